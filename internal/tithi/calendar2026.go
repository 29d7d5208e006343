package tithi

// Year is the only calendar year the table covers
const Year = 2026

// Entry is one marked date within a month
type Entry struct {
	Day         int          `json:"date"`
	Observances []Observance `json:"tithi"`
}

// MonthData is one month of the table
type MonthData struct {
	Name   string  `json:"name"`
	Events []Entry `json:"events"`
}

// calendar2026 is the authoritative 2026 table, January first.
var calendar2026 = [12]MonthData{
	{
		Name:   "January",
		Events: []Entry{
			{Day: 2, Observances: []Observance{Choudas}},
			{Day: 3, Observances: []Observance{Poonam}},
			{Day: 7, Observances: []Observance{Pancham}},
			{Day: 11, Observances: []Observance{Aatham}},
			{Day: 17, Observances: []Observance{Choudas}},
			{Day: 23, Observances: []Observance{Pancham}},
			{Day: 26, Observances: []Observance{Aatham}},
			{Day: 31, Observances: []Observance{Choudas}},
		},
	},
	{
		Name:   "February",
		Events: []Entry{
			{Day: 1, Observances: []Observance{Poonam}},
			{Day: 6, Observances: []Observance{Pancham}},
			{Day: 10, Observances: []Observance{Aatham}},
			{Day: 16, Observances: []Observance{Choudas}},
			{Day: 22, Observances: []Observance{Pancham}},
			{Day: 24, Observances: []Observance{Aatham}},
		},
	},
	{
		Name:   "March",
		Events: []Entry{
			{Day: 2, Observances: []Observance{Choudas}},
			{Day: 3, Observances: []Observance{Poonam}},
			{Day: 8, Observances: []Observance{Pancham}},
			{Day: 12, Observances: []Observance{Aatham}},
			{Day: 18, Observances: []Observance{Choudas}},
			{Day: 23, Observances: []Observance{Pancham}},
			{Day: 25, Observances: []Observance{Oliji}},
			{Day: 26, Observances: []Observance{Aatham, Oliji}},
			{Day: 27, Observances: []Observance{Oliji}},
			{Day: 28, Observances: []Observance{Oliji}},
			{Day: 29, Observances: []Observance{Oliji}},
			{Day: 30, Observances: []Observance{Oliji}},
			{Day: 31, Observances: []Observance{Oliji}},
		},
	},
	{
		Name:   "April",
		Events: []Entry{
			{Day: 1, Observances: []Observance{Choudas, Oliji}},
			{Day: 2, Observances: []Observance{Poonam, Oliji}},
			{Day: 7, Observances: []Observance{Pancham}},
			{Day: 11, Observances: []Observance{Aatham}},
			{Day: 16, Observances: []Observance{Choudas}},
			{Day: 21, Observances: []Observance{Pancham}},
			{Day: 24, Observances: []Observance{Aatham}},
			{Day: 30, Observances: []Observance{Choudas}},
		},
	},
	{
		Name:   "May",
		Events: []Entry{
			{Day: 1, Observances: []Observance{Poonam}},
			{Day: 7, Observances: []Observance{Pancham}},
			{Day: 10, Observances: []Observance{Aatham}},
			{Day: 15, Observances: []Observance{Choudas}},
			{Day: 21, Observances: []Observance{Pancham}},
			{Day: 25, Observances: []Observance{Aatham}},
			{Day: 30, Observances: []Observance{Choudas}},
			{Day: 31, Observances: []Observance{Poonam}},
		},
	},
	{
		Name:   "June",
		Events: []Entry{
			{Day: 5, Observances: []Observance{Pancham}},
			{Day: 8, Observances: []Observance{Aatham}},
			{Day: 14, Observances: []Observance{Choudas}},
			{Day: 19, Observances: []Observance{Pancham}},
			{Day: 22, Observances: []Observance{Aatham}},
			{Day: 28, Observances: []Observance{Choudas}},
			{Day: 29, Observances: []Observance{Poonam}},
		},
	},
	{
		Name:   "July",
		Events: []Entry{
			{Day: 5, Observances: []Observance{Pancham}},
			{Day: 8, Observances: []Observance{Aatham}},
			{Day: 13, Observances: []Observance{Choudas}},
			{Day: 18, Observances: []Observance{Pancham}},
			{Day: 21, Observances: []Observance{Aatham}},
			{Day: 27, Observances: []Observance{Choudas}},
			{Day: 28, Observances: []Observance{Poonam}},
		},
	},
	{
		Name:   "August",
		Events: []Entry{
			{Day: 3, Observances: []Observance{Pancham}},
			{Day: 6, Observances: []Observance{Aatham}},
			{Day: 11, Observances: []Observance{Choudas}},
			{Day: 17, Observances: []Observance{Pancham}},
			{Day: 20, Observances: []Observance{Aatham}},
			{Day: 27, Observances: []Observance{Choudas}},
			{Day: 28, Observances: []Observance{Poonam}},
		},
	},
	{
		Name:   "September",
		Events: []Entry{
			{Day: 1, Observances: []Observance{Pancham}},
			{Day: 5, Observances: []Observance{Aatham}},
			{Day: 8, Observances: []Observance{Paryusan}},
			{Day: 9, Observances: []Observance{Paryusan}},
			{Day: 10, Observances: []Observance{Choudas, Paryusan}},
			{Day: 11, Observances: []Observance{Paryusan}},
			{Day: 12, Observances: []Observance{Paryusan}},
			{Day: 13, Observances: []Observance{Paryusan}},
			{Day: 14, Observances: []Observance{Paryusan}},
			{Day: 15, Observances: []Observance{Paryusan}},
			{Day: 16, Observances: []Observance{Pancham}},
			{Day: 19, Observances: []Observance{Aatham}},
			{Day: 25, Observances: []Observance{Choudas}},
			{Day: 26, Observances: []Observance{Poonam}},
		},
	},
	{
		Name:   "October",
		Events: []Entry{
			{Day: 1, Observances: []Observance{Pancham}},
			{Day: 4, Observances: []Observance{Aatham}},
			{Day: 9, Observances: []Observance{Choudas}},
			{Day: 15, Observances: []Observance{Pancham}},
			{Day: 18, Observances: []Observance{Oliji}},
			{Day: 19, Observances: []Observance{Aatham, Oliji}},
			{Day: 20, Observances: []Observance{Oliji}},
			{Day: 21, Observances: []Observance{Oliji}},
			{Day: 22, Observances: []Observance{Oliji}},
			{Day: 23, Observances: []Observance{Oliji}},
			{Day: 24, Observances: []Observance{Choudas, Oliji}},
			{Day: 25, Observances: []Observance{Poonam, Oliji}},
			{Day: 26, Observances: []Observance{Oliji}},
			{Day: 30, Observances: []Observance{Pancham}},
			{Day: 31, Observances: []Observance{Aatham}},
		},
	},
	{
		Name:   "November",
		Events: []Entry{
			{Day: 2, Observances: []Observance{Aatham}},
			{Day: 8, Observances: []Observance{Choudas}},
			{Day: 14, Observances: []Observance{Pancham}},
			{Day: 17, Observances: []Observance{Aatham}},
			{Day: 23, Observances: []Observance{Choudas}},
			{Day: 24, Observances: []Observance{Poonam}},
			{Day: 28, Observances: []Observance{Pancham}},
		},
	},
	{
		Name:   "December",
		Events: []Entry{
			{Day: 1, Observances: []Observance{Aatham}},
			{Day: 7, Observances: []Observance{Choudas}},
			{Day: 13, Observances: []Observance{Pancham}},
			{Day: 17, Observances: []Observance{Aatham}},
			{Day: 22, Observances: []Observance{Choudas}},
			{Day: 23, Observances: []Observance{Poonam}},
			{Day: 28, Observances: []Observance{Pancham}},
			{Day: 31, Observances: []Observance{Aatham}},
		},
	},
}
