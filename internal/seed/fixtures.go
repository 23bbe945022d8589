package seed

import "github.com/campuspulse/campus-api/internal/models"

// defaultFixture is the built-in demo population: five students across three
// majors with overlapping CS and MATH sections, plus the campus building
// directory.
var defaultFixture = Fixture{
	Users: []UserFixture{
		{
			Username: "Alice Chen",
			Major:    "CS",
			Status:   "studying",
			Schedule: []ScheduleFixture{
				{CourseCode: "CS 15-122", CourseName: "Principles of Imperative Computation", Day: "monday", StartTime: "09:00", EndTime: "10:20", Location: "GHC 4401"},
				{CourseCode: "CS 15-122", CourseName: "Principles of Imperative Computation", Day: "friday", StartTime: "09:00", EndTime: "10:20", Location: "GHC 4401"},
				{CourseCode: "MATH 21-127", CourseName: "Concepts of Mathematics", Day: "tuesday", StartTime: "11:30", EndTime: "12:50", Location: "DH 2210"},
				{CourseCode: "MATH 21-127", CourseName: "Concepts of Mathematics", Day: "thursday", StartTime: "11:30", EndTime: "12:50", Location: "DH 2210"},
			},
		},
		{
			Username: "Bob Smith",
			Major:    "CS",
			Status:   "free",
			Schedule: []ScheduleFixture{
				{CourseCode: "CS 15-122", CourseName: "Principles of Imperative Computation", Day: "monday", StartTime: "09:00", EndTime: "10:20", Location: "GHC 4401"},
				{CourseCode: "CS 15-122", CourseName: "Principles of Imperative Computation", Day: "friday", StartTime: "09:00", EndTime: "10:20", Location: "GHC 4401"},
				{CourseCode: "CS 15-150", CourseName: "Principles of Functional Programming", Day: "tuesday", StartTime: "13:30", EndTime: "14:50", Location: "GHC 4307"},
			},
		},
		{
			Username: "Carol Johnson",
			Major:    "MATH",
			Status:   "social",
			Schedule: []ScheduleFixture{
				{CourseCode: "MATH 21-127", CourseName: "Concepts of Mathematics", Day: "tuesday", StartTime: "11:30", EndTime: "12:50", Location: "DH 2210"},
				{CourseCode: "MATH 21-127", CourseName: "Concepts of Mathematics", Day: "thursday", StartTime: "11:30", EndTime: "12:50", Location: "DH 2210"},
				{CourseCode: "MATH 21-259", CourseName: "Calculus in Three Dimensions", Day: "monday", StartTime: "14:30", EndTime: "15:50", Location: "DH 1211"},
			},
		},
		{
			Username: "David Wilson",
			Major:    "CS",
			Status:   "tired",
		},
		{
			Username: "Emma Davis",
			Major:    "PHYS",
			Status:   "help",
		},
	},
	Locations: campusBuildings,
}

// campusBuildings maps building codes used in schedule locations to display
// names. Duplicate codes keep their first entry.
var campusBuildings = []models.Location{
	{Code: "AH", Name: "Alumni House"},
	{Code: "AN", Name: "ANsys Hall"},
	{Code: "BH", Name: "Baker Hall"},
	{Code: "BK", Name: "Barclay Square"},
	{Code: "BR", Name: "Bramer House"},
	{Code: "CUC", Name: "Cohon University Center"},
	{Code: "CFA", Name: "College of Fine Arts"},
	{Code: "CYT", Name: "Cyert Hall"},
	{Code: "DH", Name: "Doherty Hall"},
	{Code: "FM", Name: "Facilities Management Services Building"},
	{Code: "FR", Name: "FMS Roads & Grounds"},
	{Code: "GES", Name: "Gates Center for Computer Science"},
	{Code: "GHC", Name: "Gates Hillman Center"},
	{Code: "HOA", Name: "Hall of the Arts"},
	{Code: "HBH", Name: "Hamburg Hall"},
	{Code: "HMC", Name: "H. John Heinz III College / Center for Health, Wellness and Athletics"},
	{Code: "HUC", Name: "Hunt Library"},
	{Code: "MM", Name: "Margaret Morrison Hall"},
	{Code: "MUD", Name: "Mudge House"},
	{Code: "MCG", Name: "McGill House"},
	{Code: "MOR", Name: "Morewood Gardens"},
	{Code: "MORC", Name: "Morewood Gardens C Tower"},
	{Code: "NHL", Name: "Newell-Simon Hall"},
	{Code: "POS", Name: "Posner Center"},
	{Code: "PH", Name: "Posner Hall"},
	{Code: "REH", Name: "Roberts Engineering Hall"},
	{Code: "SC", Name: "Software Engineering Institute"},
	{Code: "TEP", Name: "Tepper Building"},
	{Code: "UC", Name: "Cohon University Center"},
	{Code: "WEH", Name: "Wean Hall"},
	{Code: "WWG", Name: "West Wing"},
	{Code: "MI", Name: "Mellon Institute"},
	{Code: "PTC", Name: "Pittsburgh Technology Center"},
	{Code: "M19", Name: "Mellon Institute (M19)"},
	{Code: "WC", Name: "Coulter Welcome Center"},
	{Code: "AD", Name: "Office of Undergraduate Admission"},
	{Code: "DI", Name: "Center for Student Diversity & Inclusion"},
	{Code: "DS", Name: "Dining Services"},
	{Code: "DR", Name: "Disability Resources"},
	{Code: "EN", Name: "Entropy Convenience Store"},
	{Code: "FC", Name: "Fifth Avenue Neighborhood Commons"},
	{Code: "FCL", Name: "Frame Gallery"},
	{Code: "FRD", Name: "Furnace House"},
	{Code: "HU", Name: "The Hub"},
	{Code: "HR", Name: "Human Resources"},
	{Code: "KP", Name: "Kraus Campo"},
	{Code: "MC", Name: "McConomy Auditorium"},
	{Code: "PA", Name: "Purnell Center for the Arts"},
	{Code: "SF", Name: "Skibo Gym"},
	{Code: "SL", Name: "Smith Hall"},
	{Code: "SS", Name: "Student Academic Success Center"},
	{Code: "WS", Name: "Walking to the Sky"},
	{Code: "UPD", Name: "University Police Department"},
	{Code: "BOS", Name: "Boss House"},
	{Code: "CYH", Name: "Clyde House"},
	{Code: "DON", Name: "Donner House"},
	{Code: "HOU", Name: "Highland Apartments"},
	{Code: "FSA", Name: "Fifth and Clyde House"},
	{Code: "FSC", Name: "Fifth and Clyde Apartments"},
	{Code: "FBA", Name: "Fifth and Clyde Apartments FBA"},
	{Code: "GQ", Name: "Greek Quad"},
	{Code: "HAM", Name: "Hamerschlag House"},
	{Code: "ECG", Name: "East Campus Garage"},
	{Code: "GH", Name: "Dithridge Garage"},
	{Code: "MMG", Name: "Margaret Morrison Street Garage"},
	{Code: "PHG", Name: "Panther Hollow Garage"},
	{Code: "RPG", Name: "Roberts Parking Garage"},
	{Code: "ENG", Name: "College of Engineering"},
	{Code: "DC", Name: "Dietrich College of Humanities & Social Sciences"},
	{Code: "HC", Name: "Heinz College of Information Systems and Public Policy"},
	{Code: "MCS", Name: "Mellon College of Science"},
	{Code: "SCS", Name: "School of Computer Science"},
	{Code: "TBS", Name: "Tepper School of Business"},
	{Code: "WQ", Name: "WQED Building"},
	{Code: "35C", Name: "305 S. Craig"},
	{Code: "35B", Name: "311 S. Craig"},
	{Code: "45C", Name: "407 S. Craig"},
	{Code: "45A", Name: "415 S. Craig"},
	{Code: "46C", Name: "4609 Winthrop"},
	{Code: "46I", Name: "4615 Henry"},
	{Code: "PO", Name: "4620 Henry"},
	{Code: "MEL", Name: "477 Melwood Ave"},
	{Code: "MEL2", Name: "6555 Penn"},
}
