// Package profile holds the facts inferred about the person in a conversation.
package profile

// Gender is binary by design; the zero value means unknown.
type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
)

// Situation classifies the kind of abuse described; the zero value means unspecified.
type Situation string

const (
	SituationMarital         Situation = "marital abuse"
	SituationFamily          Situation = "family abuse"
	SituationDowry           Situation = "dowry harassment"
	SituationIntimatePartner Situation = "intimate partner violence"
)

// Profile accumulates the latest match for each field. Empty fields are unknown.
type Profile struct {
	Name      string    `json:"name,omitempty"`
	Location  string    `json:"location,omitempty"`
	Gender    Gender    `json:"gender,omitempty"`
	Situation Situation `json:"situation,omitempty"`
}

// Empty reports whether nothing has been learned yet.
func (p Profile) Empty() bool {
	return p == Profile{}
}

// Update is a partial diff produced by extraction. Nil fields are left alone.
type Update struct {
	Name      *string
	Location  *string
	Gender    *Gender
	Situation *Situation
}

// Empty reports whether the update changes nothing.
func (u Update) Empty() bool {
	return u.Name == nil && u.Location == nil && u.Gender == nil && u.Situation == nil
}

// Apply returns p with every non-nil field of u written over it. A field is
// never cleared by Apply.
func (p Profile) Apply(u Update) Profile {
	if u.Name != nil && *u.Name != "" {
		p.Name = *u.Name
	}
	if u.Location != nil && *u.Location != "" {
		p.Location = *u.Location
	}
	if u.Gender != nil && *u.Gender != "" {
		p.Gender = *u.Gender
	}
	if u.Situation != nil && *u.Situation != "" {
		p.Situation = *u.Situation
	}
	return p
}
