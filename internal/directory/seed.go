package directory

const placeholderImage = "/placeholder-user.jpg"

var (
	enHiBn = []string{"English", "Hindi", "Bengali"}
	enBnHi = []string{"English", "Bengali", "Hindi"}
)

func langs(l []string) []string { return append([]string(nil), l...) }

func SeedDoctors() []Doctor {
	return []Doctor{
		{
			ID: "1", Name: "Dr. Rajesh Kumar", Specialty: "Cardiology", Qualification: "MD, DM Cardiology",
			Experience: "15 years", Rating: 4.8, Reviews: 245, Location: "Salt Lake, Kolkata",
			Hospital: "Apollo Gleneagles Hospital", ConsultationFee: "₹800-1200", Availability: "Mon-Sat 10AM-6PM",
			Languages: langs(enHiBn), Image: placeholderImage, Phone: "+913323203040",
			GoogleURL: "https://www.google.com/search?q=Dr.+Rajesh+Kumar+Cardiologist+Apollo+Gleneagles+Kolkata",
		},
		{
			ID: "2", Name: "Dr. Priya Sharma", Specialty: "Neurology", Qualification: "MD, DM Neurology",
			Experience: "12 years", Rating: 4.9, Reviews: 189, Location: "Park Street, Kolkata",
			Hospital: "AMRI Hospital", ConsultationFee: "₹900-1500", Availability: "Tue-Sun 9AM-5PM",
			Languages: langs(enHiBn), Image: placeholderImage, Phone: "+913366063800",
			GoogleURL: "https://www.google.com/search?q=Dr.+Priya+Sharma+Neurologist+AMRI+Kolkata",
		},
		{
			ID: "3", Name: "Dr. Amit Banerjee", Specialty: "Ophthalmology", Qualification: "MS Ophthalmology",
			Experience: "18 years", Rating: 4.7, Reviews: 312, Location: "Ballygunge, Kolkata",
			Hospital: "Sankara Nethralaya", ConsultationFee: "₹600-1000", Availability: "Mon-Fri 11AM-7PM",
			Languages: langs(enBnHi), Image: placeholderImage, Phone: "+913322001234",
			GoogleURL: "https://www.google.com/search?q=Dr.+Amit+Banerjee+Ophthalmology+Sankara+Nethralaya+Kolkata",
		},
		{
			ID: "4", Name: "Dr. Sunita Das", Specialty: "Pediatrics", Qualification: "MD Pediatrics",
			Experience: "10 years", Rating: 4.6, Reviews: 156, Location: "New Town, Kolkata",
			Hospital: "Fortis Hospital", ConsultationFee: "₹500-800", Availability: "Mon-Sat 2PM-8PM",
			Languages: []string{"English", "Bengali"}, Image: placeholderImage, Phone: "+913366284444",
			GoogleURL: "https://www.google.com/search?q=Dr.+Sunita+Das+Pediatrician+Fortis+Kolkata",
		},
		{
			ID: "5", Name: "Dr. Vikram Singh", Specialty: "Orthopedics", Qualification: "MS Orthopedics",
			Experience: "20 years", Rating: 4.8, Reviews: 278, Location: "Howrah, Kolkata",
			Hospital: "Belle Vue Clinic", ConsultationFee: "₹700-1100", Availability: "Mon-Sat 10AM-4PM",
			Languages: langs(enHiBn), Image: placeholderImage, Phone: "+913324567890",
			GoogleURL: "https://www.google.com/search?q=Dr.+Vikram+Singh+Orthopedics+Belle+Vue+Kolkata",
		},
		{
			ID: "6", Name: "Dr. Anita Roy", Specialty: "General Medicine", Qualification: "MBBS, MD",
			Experience: "8 years", Rating: 4.5, Reviews: 134, Location: "Jadavpur, Kolkata",
			Hospital: "Ruby General Hospital", ConsultationFee: "₹400-600", Availability: "Daily 9AM-9PM",
			Languages: langs(enBnHi), Image: placeholderImage, Phone: "+913340610400",
			GoogleURL: "https://www.google.com/search?q=Dr.+Anita+Roy+General+Medicine+Ruby+General+Kolkata",
		},
		{
			ID: "7", Name: "Dr. Sandeep Ghosh", Specialty: "Cardiology", Qualification: "MD, DM Cardiology",
			Experience: "17 years", Rating: 4.7, Reviews: 210, Location: "Alipore, Kolkata",
			Hospital: "Woodlands Hospital", ConsultationFee: "₹900-1400", Availability: "Mon-Sat 10AM-5PM",
			Languages: langs(enBnHi), Image: placeholderImage, Phone: "+913324544000",
			GoogleURL: "https://www.google.com/search?q=Dr.+Sandeep+Ghosh+Cardiologist+Woodlands+Kolkata",
		},
		{
			ID: "8", Name: "Dr. Rupa Sen", Specialty: "Neurology", Qualification: "MD, DM Neurology",
			Experience: "14 years", Rating: 4.8, Reviews: 198, Location: "Bhowanipore, Kolkata",
			Hospital: "SSKM Hospital", ConsultationFee: "₹700-1200", Availability: "Mon-Fri 12PM-6PM",
			Languages: langs(enBnHi), Image: placeholderImage, Phone: "+913322283541",
			GoogleURL: "https://www.google.com/search?q=Dr.+Rupa+Sen+Neurologist+SSKM+Kolkata",
		},
		{
			ID: "9", Name: "Dr. Abhishek Dutta", Specialty: "Orthopedics", Qualification: "MS Orthopedics",
			Experience: "13 years", Rating: 4.6, Reviews: 175, Location: "Dum Dum, Kolkata",
			Hospital: "ILS Hospital", ConsultationFee: "₹600-900", Availability: "Tue-Sat 10AM-2PM",
			Languages: langs(enHiBn), Image: placeholderImage, Phone: "+913326627000",
			GoogleURL: "https://www.google.com/search?q=Dr.+Abhishek+Dutta+Orthopedics+ILS+Kolkata",
		},
		{
			ID: "10", Name: "Dr. Meenakshi Pal", Specialty: "Ophthalmology", Qualification: "MS Ophthalmology",
			Experience: "16 years", Rating: 4.8, Reviews: 240, Location: "Salt Lake, Kolkata",
			Hospital: "Narayana Nethralaya", ConsultationFee: "₹700-1000", Availability: "Mon-Sat 9AM-3PM",
			Languages: langs(enBnHi), Image: placeholderImage, Phone: "+913366268888",
			GoogleURL: "https://www.google.com/search?q=Dr.+Meenakshi+Pal+Ophthalmology+Narayana+Kolkata",
		},
	}
}

func SeedSpecialties() []Specialty {
	return []Specialty{
		{Name: "Cardiology", Description: "Heart and cardiovascular system specialists"},
		{Name: "Neurology", Description: "Brain and nervous system specialists"},
		{Name: "Ophthalmology", Description: "Eye and vision care specialists"},
		{Name: "Orthopedics", Description: "Bone, joint, and muscle specialists"},
		{Name: "Pediatrics", Description: "Children's health specialists"},
		{Name: "General Medicine", Description: "Primary care and general health"},
	}
}

func SeedHospitals() []Hospital {
	return []Hospital{
		{Name: "Apollo Gleneagles Hospital", City: "Kolkata", Image: "/images/hospitals/apollo-gleneagles.png", GoogleURL: "https://www.google.com/search?q=Apollo+Gleneagles+Hospital+Kolkata"},
		{Name: "AMRI Hospital Dhakuria", City: "Kolkata", Image: "/images/hospitals/amri-dhakuria.png", GoogleURL: "https://www.google.com/search?q=AMRI+Hospital+Dhakuria+Kolkata"},
		{Name: "Fortis Hospital Anandapur", City: "Kolkata", Image: "/images/hospitals/fortis-anandapur.png", GoogleURL: "https://www.google.com/search?q=Fortis+Hospital+Anandapur+Kolkata"},
		{Name: "Belle Vue Clinic", City: "Kolkata", Image: "/images/hospitals/belle-vue.png", GoogleURL: "https://www.google.com/search?q=Belle+Vue+Clinic+Kolkata"},
	}
}
