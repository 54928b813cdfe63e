package model

// President is one row of the source data.
type President struct {
	Name          string
	BirthDate     *Date
	DeathDate     *Date // nil if the president was living when the data was read
	BirthPlace    string
	DeathLocation string
	Row           int // 1-based data row in the source
}

// IsLiving reports whether p has no recorded death date.
func (p *President) IsLiving() bool {
	return p.DeathDate.IsUnknown()
}
