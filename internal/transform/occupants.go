package transform

import (
	"fmt"

	"github.com/rgehrsitz/viagerpro/internal/config"
	"github.com/rgehrsitz/viagerpro/internal/domain"
)

// Occupant selectors
const (
	Seller  = "seller"
	Partner = "partner"
)

func occupant(deal *domain.Deal, who string) (*domain.Person, error) {
	switch who {
	case Seller:
		return &deal.Seller, nil
	case Partner:
		if deal.Partner == nil {
			return nil, fmt.Errorf("deal %q has no partner", deal.Name)
		}
		return deal.Partner, nil
	}
	return nil, fmt.Errorf("unknown occupant %q (want %s or %s)", who, Seller, Partner)
}

func validAge(age int) bool {
	return age >= config.MinOccupantAge && age <= config.MaxOccupantAge
}

// SetAge sets an occupant's age, either absolutely (Age) or relative to the
// current age (Years). Exactly one of the two must be non-zero.
type SetAge struct {
	Occupant string
	Age      int
	Years    int
}

func (sa *SetAge) Name() string {
	return "set_age"
}

func (sa *SetAge) Description() string {
	if sa.Age != 0 {
		return fmt.Sprintf("Set %s age to %d", sa.Occupant, sa.Age)
	}
	return fmt.Sprintf("Age %s by %+d years", sa.Occupant, sa.Years)
}

func (sa *SetAge) target(current int) int {
	if sa.Age != 0 {
		return sa.Age
	}
	return current + sa.Years
}

func (sa *SetAge) Validate(base *domain.Deal) error {
	if err := requireBase(sa.Name(), base); err != nil {
		return err
	}
	if (sa.Age == 0) == (sa.Years == 0) {
		return NewTransformError(sa.Name(), "validate", "exactly one of age or years must be set", nil)
	}
	p, err := occupant(base, sa.Occupant)
	if err != nil {
		return NewTransformError(sa.Name(), "validate", "occupant lookup failed", err)
	}
	if age := sa.target(p.Age); !validAge(age) {
		return NewTransformError(sa.Name(), "validate", fmt.Sprintf("age %d outside [%d, %d]", age, config.MinOccupantAge, config.MaxOccupantAge), nil)
	}
	return nil
}

func (sa *SetAge) Apply(base *domain.Deal) (*domain.Deal, error) {
	modified := base.Clone()
	p, err := occupant(modified, sa.Occupant)
	if err != nil {
		return nil, NewTransformError(sa.Name(), "apply", "occupant lookup failed", err)
	}
	p.Age = sa.target(p.Age)
	return modified, nil
}

// SetDisease changes an occupant's declared condition
type SetDisease struct {
	Occupant string
	Disease  domain.DiseaseCode
}

func (sd *SetDisease) Name() string {
	return "set_disease"
}

func (sd *SetDisease) Description() string {
	return fmt.Sprintf("Set %s condition to %s", sd.Occupant, sd.Disease)
}

func (sd *SetDisease) Validate(base *domain.Deal) error {
	if err := requireBase(sd.Name(), base); err != nil {
		return err
	}
	if !sd.Disease.Known() {
		return NewTransformError(sd.Name(), "validate", fmt.Sprintf("unknown disease code %q", sd.Disease), nil)
	}
	if _, err := occupant(base, sd.Occupant); err != nil {
		return NewTransformError(sd.Name(), "validate", "occupant lookup failed", err)
	}
	return nil
}

func (sd *SetDisease) Apply(base *domain.Deal) (*domain.Deal, error) {
	modified := base.Clone()
	p, err := occupant(modified, sd.Occupant)
	if err != nil {
		return nil, NewTransformError(sd.Name(), "apply", "occupant lookup failed", err)
	}
	p.Disease = sd.Disease
	return modified, nil
}

// SetPartner adds a second occupant, or replaces the existing one
type SetPartner struct {
	Person domain.Person
}

func (sp *SetPartner) Name() string {
	return "set_partner"
}

func (sp *SetPartner) Description() string {
	return fmt.Sprintf("Set partner to %s aged %d (%s)", sp.Person.Gender.Label(), sp.Person.Age, sp.Person.Disease)
}

func (sp *SetPartner) Validate(base *domain.Deal) error {
	if err := requireBase(sp.Name(), base); err != nil {
		return err
	}
	if !validAge(sp.Person.Age) {
		return NewTransformError(sp.Name(), "validate", fmt.Sprintf("age %d outside [%d, %d]", sp.Person.Age, config.MinOccupantAge, config.MaxOccupantAge), nil)
	}
	if !sp.Person.Gender.Valid() {
		return NewTransformError(sp.Name(), "validate", fmt.Sprintf("invalid gender %q", sp.Person.Gender), nil)
	}
	return nil
}

func (sp *SetPartner) Apply(base *domain.Deal) (*domain.Deal, error) {
	modified := base.Clone()
	partner := sp.Person
	if partner.Disease == "" {
		partner.Disease = domain.DiseaseNone
	}
	modified.Partner = &partner
	return modified, nil
}

// RemovePartner turns a couple deal into a single-occupant deal
type RemovePartner struct{}

func (rp *RemovePartner) Name() string {
	return "remove_partner"
}

func (rp *RemovePartner) Description() string {
	return "Remove the second occupant"
}

func (rp *RemovePartner) Validate(base *domain.Deal) error {
	if err := requireBase(rp.Name(), base); err != nil {
		return err
	}
	if !base.IsCouple() {
		return NewTransformError(rp.Name(), "validate", fmt.Sprintf("deal %q has no partner", base.Name), nil)
	}
	return nil
}

func (rp *RemovePartner) Apply(base *domain.Deal) (*domain.Deal, error) {
	modified := base.Clone()
	modified.Partner = nil
	return modified, nil
}
