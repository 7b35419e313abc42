package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Deal is a proposed viager transaction together with its occupants.
// A non-nil Partner makes it a couple deal.
type Deal struct {
	Name          string          `yaml:"name" json:"name"`
	Description   string          `yaml:"description,omitempty" json:"description,omitempty"`
	PostalCode    string          `yaml:"postal_code,omitempty" json:"postal_code,omitempty"`
	PropertyPrice decimal.Decimal `yaml:"property_price" json:"property_price"`
	Surface       decimal.Decimal `yaml:"surface" json:"surface"`
	Bouquet       decimal.Decimal `yaml:"bouquet" json:"bouquet"`
	Rente         decimal.Decimal `yaml:"rente" json:"rente"`
	TaxeFonciere  decimal.Decimal `yaml:"taxe_fonciere" json:"taxe_fonciere"`
	AvgPriceM2    decimal.Decimal `yaml:"avg_price_m2" json:"avg_price_m2"`
	Seller        Person          `yaml:"seller" json:"seller"`
	Partner       *Person         `yaml:"partner,omitempty" json:"partner,omitempty"`
}

// IsCouple reports whether the deal has a second occupant
func (d *Deal) IsCouple() bool {
	return d.Partner != nil
}

// Clone returns a deep copy of the deal
func (d *Deal) Clone() *Deal {
	c := *d
	if d.Partner != nil {
		p := *d.Partner
		c.Partner = &p
	}
	return &c
}

// Configuration is the top-level document of a deal file
type Configuration struct {
	Deals []Deal `yaml:"deals" json:"deals"`
}

// FindDeal returns the deal with the given name. An empty name selects the
// first deal of the file.
func (c *Configuration) FindDeal(name string) (*Deal, error) {
	if len(c.Deals) == 0 {
		return nil, fmt.Errorf("configuration contains no deals")
	}
	if name == "" {
		return &c.Deals[0], nil
	}
	for i := range c.Deals {
		if c.Deals[i].Name == name {
			return &c.Deals[i], nil
		}
	}
	return nil, fmt.Errorf("deal %q not found", name)
}

// DealNames lists the names of all deals in file order
func (c *Configuration) DealNames() []string {
	names := make([]string, 0, len(c.Deals))
	for _, d := range c.Deals {
		names = append(names, d.Name)
	}
	return names
}
