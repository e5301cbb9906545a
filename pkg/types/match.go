package types

// MatchField names the input box being checked for duplicates.
type MatchField string

const (
	FieldName        MatchField = "name"
	FieldNationalID  MatchField = "nationalId"
	FieldPhone       MatchField = "phone"
	FieldSpouseName  MatchField = "spouseName"
	FieldSpouseID    MatchField = "spouseId"
	FieldSpousePhone MatchField = "spousePhone"
)

// FieldKind groups fields by what they compare against.
type FieldKind int

const (
	KindUnknown FieldKind = iota
	KindName
	KindNationalID
	KindPhone
)

func (f MatchField) Kind() FieldKind {
	switch f {
	case FieldName, FieldSpouseName:
		return KindName
	case FieldNationalID, FieldSpouseID:
		return KindNationalID
	case FieldPhone, FieldSpousePhone:
		return KindPhone
	}
	return KindUnknown
}

func (f MatchField) Valid() bool {
	return f.Kind() != KindUnknown
}

// MatchScope is the screen the check runs from; it caps the result count.
type MatchScope string

const (
	ScopeAffidavit MatchScope = "affidavit"
	ScopeCase      MatchScope = "case"
	ScopeGlobal    MatchScope = "global"
)

func (s MatchScope) Limit() int {
	switch s {
	case ScopeAffidavit:
		return 5
	case ScopeGlobal:
		return 15
	}
	return 10
}

type MatchSource string

const (
	SourceCases      MatchSource = "cases"
	SourceDonations  MatchSource = "donations"
	SourceExpenses   MatchSource = "expenses"
	SourceAffidavits MatchSource = "affidavits"
)

// Label is the warning text shown next to a hit.
func (s MatchSource) Label() string {
	switch s {
	case SourceCases:
		return "حالة مسجلة"
	case SourceDonations:
		return "متبرع"
	case SourceExpenses:
		return "مستفيد مساعدات"
	case SourceAffidavits:
		return "إقرار سابق"
	}
	return string(s)
}

type MatchRole string

const (
	RolePrimary MatchRole = "primary"
	RoleSpouse  MatchRole = "spouse"
	RoleHusband MatchRole = "husband"
	RoleWife    MatchRole = "wife"
)

// Match is one possible duplicate. Record holds a copy of the matched
// Case, Donation, Expense or Affidavit.
type Match struct {
	Source      MatchSource `json:"source"`
	Label       string      `json:"label"`
	DisplayName string      `json:"displayName"`
	EntityID    int64       `json:"entityId"`
	Role        MatchRole   `json:"role"`
	Record      any         `json:"record"`
}

type SearchResults struct {
	Query        string      `json:"query"`
	EstimatedAge *int        `json:"estimatedAge,omitempty"`
	Cases        []Case      `json:"cases"`
	Donations    []Donation  `json:"donations"`
	Expenses     []Expense   `json:"expenses"`
	Volunteers   []Volunteer `json:"volunteers"`
	Affidavits   []Affidavit `json:"affidavits"`
}
