package address

import "time"

type Address struct {
	AddressID     int    `gorm:"primaryKey"`
	AddressLine1  string `gorm:"uniqueIndex:uq_address_lines,priority:1"`
	AddressLine2  string `gorm:"uniqueIndex:uq_address_lines,priority:2"`
	City          string `gorm:"uniqueIndex:uq_address_lines,priority:3"`
	StateProvince string `gorm:"uniqueIndex:uq_address_lines,priority:4"`
	PostalCode    string `gorm:"uniqueIndex:uq_address_lines,priority:5"`
	ModifiedDate  time.Time
}

func (Address) TableName() string { return "addresses" }
