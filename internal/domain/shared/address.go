// internal/domain/shared/address.go
package shared

// Address represents a postal address, embedded into owning entities.
type Address struct {
	Street     string `gorm:"size:200" json:"street"`
	City       string `gorm:"size:100" json:"city"`
	State      string `gorm:"size:100" json:"state"`
	PostalCode string `gorm:"size:20" json:"postal_code"`
	Country    string `gorm:"size:100" json:"country"`
}
