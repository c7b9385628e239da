package models

// BroadbandHeader is the header row of a broadband table.
var BroadbandHeader = []string{"date", "county code", "broadband", "state & county", "state code"}

// BroadbandRecord is the broadband access percentage of one county.
type BroadbandRecord struct {
	// Date is when the record was retrieved.
	Date string `json:"date"`
	// CountyCode is the county FIPS code.
	CountyCode string `json:"county code"`
	// Broadband is the percentage of households with broadband access.
	Broadband string `json:"broadband"`
	// Name is the "<county>, <state>" display name.
	Name string `json:"name"`
	// StateCode is the state FIPS code.
	StateCode string `json:"state code"`
}

// Table returns the record as a two-row table under BroadbandHeader.
func (b BroadbandRecord) Table() Table {
	header := append([]string(nil), BroadbandHeader...)
	return Table{
		header,
		{b.Date, b.CountyCode, b.Broadband, b.Name, b.StateCode},
	}
}
