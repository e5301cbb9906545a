package types

import (
	"github.com/shopspring/decimal"
)

const (
	DefaultCaseStatus   = "قيد الدراسة"
	DefaultDonationType = "عام"

	SponsorshipTypePrefix     = "كفالة: "
	SponsorshipCategoryPrefix = "كفالة من "
	SponsorshipResponsible    = "نظام الكفالات"
)

// Donation amounts are written as plain JSON numbers, the shape older
// office files use.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// KnownCaseTypes are the preset category boxes offered on the case form.
var KnownCaseTypes = []string{"الصدقات", "زكاة مال", "مستفيدي كرتونة", "لحوم صكوك"}

// Case is a registered beneficiary family.
type Case struct {
	ID           int64  `json:"id"`
	SearchNumber string `json:"searchNumber"`
	Center       string `json:"center"`

	Name       string `json:"name"`
	NationalID string `json:"nationalId"`
	Job        string `json:"job"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Note       string `json:"note"`

	SpouseName  string `json:"spouseName"`
	SpouseID    string `json:"spouseId"`
	SpousePhone string `json:"spousePhone"`

	FamilyMembers string         `json:"familyMembers"`
	Members       []FamilyMember `json:"members,omitempty"`

	Type         Tags   `json:"type"`
	Source       string `json:"source"`
	SocialStatus string `json:"socialStatus"`
	Status       string `json:"status"`
	Date         string `json:"date"`

	// Amount is the last amount paid or sponsored, not a running total.
	Amount     string    `json:"amount"`
	AidHistory []Expense `json:"aidHistory,omitempty"`

	Hidden bool `json:"hidden"`

	PhotoURL  string   `json:"photoUrl,omitempty"`
	IDCardURL string   `json:"idCardUrl,omitempty"`
	Docs      []string `json:"docs,omitempty"`
}

type FamilyMember struct {
	Name     string `json:"name"`
	IDNo     string `json:"idNo"`
	Relation string `json:"relation"`
	Age      string `json:"age"`
	Job      string `json:"job"`
}

// Clone returns a copy that shares no slices with c.
func (c Case) Clone() Case {
	out := c
	out.Type = c.Type.Clone()
	if c.Members != nil {
		out.Members = append([]FamilyMember(nil), c.Members...)
	}
	if c.AidHistory != nil {
		out.AidHistory = append([]Expense(nil), c.AidHistory...)
	}
	if c.Docs != nil {
		out.Docs = append([]string(nil), c.Docs...)
	}
	return out
}

// Donation is money received. Donor is free text; donors have no record
// of their own.
type Donation struct {
	ID     int64           `json:"id"`
	Date   string          `json:"date"`
	Donor  string          `json:"donor"`
	Phone  string          `json:"phone"`
	Amount decimal.Decimal `json:"amount"`
	Type   Tags            `json:"type"`
}

func (d Donation) Clone() Donation {
	d.Type = d.Type.Clone()
	return d
}

// Expense is one aid payment. Amount may hold a quantity such as
// "2 كرتونة" rather than money.
type Expense struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"`
	Beneficiary string `json:"beneficiary"`
	NationalID  string `json:"nationalId"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Month       string `json:"month"`
	Responsible string `json:"responsible"`
	Signature   string `json:"signature"`
}

type Volunteer struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Note    string `json:"note"`
}

// Affidavit attests that a husband and wife receive no aid elsewhere.
type Affidavit struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	HusName   string `json:"husName"`
	HusID     string `json:"husId"`
	HusPhone  string `json:"husPhone"`
	WifeName  string `json:"wifeName"`
	WifeID    string `json:"wifeId"`
	WifePhone string `json:"wifePhone"`
}

// AppData is the whole office file.
type AppData struct {
	Cases      []Case      `json:"cases"`
	Donations  []Donation  `json:"donations"`
	Expenses   []Expense   `json:"expenses"`
	Volunteers []Volunteer `json:"volunteers"`
	Affidavits []Affidavit `json:"affidavits"`
}

func NewAppData() *AppData {
	data := new(AppData)
	data.Normalize()
	return data
}

// Normalize replaces missing collections with empty ones so files written
// by older versions load cleanly.
func (d *AppData) Normalize() {
	if d.Cases == nil {
		d.Cases = []Case{}
	}
	if d.Donations == nil {
		d.Donations = []Donation{}
	}
	if d.Expenses == nil {
		d.Expenses = []Expense{}
	}
	if d.Volunteers == nil {
		d.Volunteers = []Volunteer{}
	}
	if d.Affidavits == nil {
		d.Affidavits = []Affidavit{}
	}
	for i := range d.Cases {
		if d.Cases[i].Type == nil {
			d.Cases[i].Type = Tags{}
		}
	}
	for i := range d.Donations {
		if d.Donations[i].Type == nil {
			d.Donations[i].Type = Tags{}
		}
	}
}

// Clone deep-copies the aggregate.
func (d *AppData) Clone() *AppData {
	out := &AppData{
		Cases:      make([]Case, len(d.Cases)),
		Donations:  make([]Donation, len(d.Donations)),
		Expenses:   append([]Expense{}, d.Expenses...),
		Volunteers: append([]Volunteer{}, d.Volunteers...),
		Affidavits: append([]Affidavit{}, d.Affidavits...),
	}
	for i, c := range d.Cases {
		out.Cases[i] = c.Clone()
	}
	for i, don := range d.Donations {
		out.Donations[i] = don.Clone()
	}
	return out
}

// MaxID returns the largest id used anywhere in the aggregate, including
// expense copies held in case histories.
func (d *AppData) MaxID() int64 {
	var highest int64
	bump := func(id int64) {
		if id > highest {
			highest = id
		}
	}
	for _, c := range d.Cases {
		bump(c.ID)
		for _, e := range c.AidHistory {
			bump(e.ID)
		}
	}
	for _, x := range d.Donations {
		bump(x.ID)
	}
	for _, x := range d.Expenses {
		bump(x.ID)
	}
	for _, x := range d.Volunteers {
		bump(x.ID)
	}
	for _, x := range d.Affidavits {
		bump(x.ID)
	}
	return highest
}

// MediaKind names a single-file attachment slot on a case.
type MediaKind string

const (
	MediaPhoto  MediaKind = "photo"
	MediaIDCard MediaKind = "idCard"
)

func (k MediaKind) Valid() bool {
	return k == MediaPhoto || k == MediaIDCard
}
