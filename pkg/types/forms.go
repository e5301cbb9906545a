package types

import "github.com/shopspring/decimal"

type CaseInput struct {
	SearchNumber string `json:"searchNumber"`
	Center       string `json:"center"`

	Name       string `json:"name" validate:"required"`
	NationalID string `json:"nationalId"`
	Job        string `json:"job"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Note       string `json:"note"`

	SpouseName  string `json:"spouseName"`
	SpouseID    string `json:"spouseId"`
	SpousePhone string `json:"spousePhone"`

	FamilyMembers string `json:"familyMembers"`

	// Types holds the ticked category boxes, OtherType the free entry.
	Types        []string `json:"types"`
	OtherType    string   `json:"otherType"`
	Source       string   `json:"source"`
	SocialStatus string   `json:"socialStatus"`
	Status       string   `json:"status"`
	Date         string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Amount       string   `json:"amount"`
}

type MemberInput struct {
	Name     string `json:"name" validate:"required"`
	IDNo     string `json:"idNo"`
	Relation string `json:"relation"`
	Age      string `json:"age"`
	Job      string `json:"job"`
}

type DonationInput struct {
	Donor         string          `json:"donor" validate:"required"`
	Phone         string          `json:"phone"`
	Amount        decimal.Decimal `json:"amount"`
	Categories    []string        `json:"categories"`
	OtherCategory string          `json:"otherCategory"`
	Date          string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type SponsorshipInput struct {
	Donor   string          `json:"donor" validate:"required"`
	Phone   string          `json:"phone"`
	Amount  decimal.Decimal `json:"amount"`
	CaseIDs []int64         `json:"caseIds" validate:"required,min=1,dive,gt=0"`
	Date    string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// DisbursementInput records aid paid out. A non-zero ID edits that record.
type DisbursementInput struct {
	ID          int64  `json:"id"`
	Date        string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Beneficiary string `json:"beneficiary" validate:"required"`
	NationalID  string `json:"nationalId"`
	Amount      string `json:"amount" validate:"required"`
	Category    string `json:"category"`
	Month       string `json:"month"`
	Responsible string `json:"responsible"`
	Signature   string `json:"signature"`
}

type DonationUpdate struct {
	Date       string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Donor      string          `json:"donor" validate:"required"`
	Phone      string          `json:"phone"`
	Amount     decimal.Decimal `json:"amount"`
	Categories []string        `json:"categories"`
}

type VolunteerInput struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Note    string `json:"note"`
}

type AffidavitInput struct {
	Date      string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	HusName   string `json:"husName" validate:"required_without=WifeName"`
	HusID     string `json:"husId"`
	HusPhone  string `json:"husPhone"`
	WifeName  string `json:"wifeName" validate:"required_without=HusName"`
	WifeID    string `json:"wifeId"`
	WifePhone string `json:"wifePhone"`
}
