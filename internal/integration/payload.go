// internal/integration/payload.go
package integration

import (
	"strings"

	appErrors "github.com/leasemagnets/leadintake-backend/internal/errors"
	"github.com/leasemagnets/leadintake-backend/internal/model"
)

// DispatchRequest carries everything a payload builder may need: the
// persisted lead plus the owning customer's configuration. Built once per
// fan-out and shared read-only across integrations.
type DispatchRequest struct {
	Lead        model.Lead
	CompanyInfo model.CompanyInfo
	Branding    model.Branding
	Promos      []model.Promo
	Config      model.IntegrationConfig
}

// Payload shapes below match the backend's wire format field for field.

type EntrataPayload struct {
	Creds               EntrataCreds `json:"creds"`
	PropertyID          string       `json:"property_id"`
	OriginatingSourceID string       `json:"originating_source_id"`
	FirstName           string       `json:"first_name"`
	LastName            string       `json:"last_name"`
	Email               string       `json:"email"`
	Phone               string       `json:"phone"`
	VideoJourney        string       `json:"video_journey"`
	Notes               string       `json:"notes"`
}

type EntrataCreds struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TeamEmailPayload struct {
	LColor    string `json:"lColor"`
	RColor    string `json:"rColor"`
	CmpEmails string `json:"cmpEmails"`
	Company   string `json:"company"`
	LeadName  string `json:"leadName"`
	Code      string `json:"code"`
	Option    string `json:"option"`
	DateTime  string `json:"dateTime"`
	LeadEmail string `json:"leadEmail"`
	LeadNum   string `json:"leadNum"`
	TourPath  string `json:"tourPath"`
}

type PromoEmailPayload struct {
	LColor    string `json:"lColor"`
	RColor    string `json:"rColor"`
	LeadEmail string `json:"leadEmail"`
	LeadName  string `json:"leadName"`
	Company   string `json:"company"`
	CmpEmails string `json:"cmpEmails"`
	CmpRep    string `json:"cmpRep"`
	CmpSite   string `json:"cmpSite"`
	CmpNum    string `json:"cmpNum"`
	CmpAddy   string `json:"cmpAddy"`
	Fee       string `json:"fee"`
	Code      string `json:"code"`
	Amount    string `json:"amount"`
	Selfie    string `json:"selfie"`
	FB        string `json:"fb"`
	Insta     string `json:"insta"`
	Twitter   string `json:"twitter"`
	RegLink   string `json:"regLink"`
}

// splitName cuts at the first space. A name with no space keeps
// everything in the first name and leaves the last name empty.
func splitName(name string) (first, last string) {
	first, last, _ = strings.Cut(name, " ")
	return first, last
}

func BuildEntrataPayload(req *DispatchRequest) EntrataPayload {
	first, last := splitName(req.Lead.Name)
	return EntrataPayload{
		Creds: EntrataCreds{
			Username: req.Config.Username,
			Password: req.Config.Password,
		},
		PropertyID:          req.Config.PropertyID,
		OriginatingSourceID: req.Config.OriginatingSourceID,
		FirstName:           first,
		LastName:            last,
		Email:               req.Lead.Email,
		Phone:               req.Lead.Phone,
		VideoJourney:        strings.Join(req.Lead.Answers, "\n"),
		Notes:               "",
	}
}

func BuildTeamEmailPayload(req *DispatchRequest) TeamEmailPayload {
	var code string
	if len(req.Promos) > 0 {
		code = req.Promos[0].Code
	}
	return TeamEmailPayload{
		LColor:    req.Branding.Gradient.LColor,
		RColor:    req.Branding.Gradient.RColor,
		CmpEmails: req.Config.TeamEmail,
		Company:   req.CompanyInfo.Name,
		LeadName:  req.Lead.Name,
		Code:      code,
		Option:    req.Lead.Source,
		DateTime:  FormatTourTime(req.Lead.CreatedAt),
		LeadEmail: req.Lead.Email,
		LeadNum:   req.Lead.Phone,
		TourPath:  strings.Join(req.Lead.Answers, "\n"),
	}
}

// BuildPromoEmailPayload fails with ErrPromoNotLive when the first promo
// code is missing or disabled; the dispatch is then skipped outright.
func BuildPromoEmailPayload(req *DispatchRequest) (PromoEmailPayload, error) {
	if len(req.Promos) == 0 || !req.Promos[0].Live {
		return PromoEmailPayload{}, appErrors.ErrPromoNotLive
	}
	promo := req.Promos[0]
	info := req.CompanyInfo
	return PromoEmailPayload{
		LColor:    req.Branding.Gradient.LColor,
		RColor:    req.Branding.Gradient.RColor,
		LeadEmail: req.Lead.Email,
		LeadName:  req.Lead.Name,
		Company:   info.Name,
		CmpEmails: info.Email,
		CmpRep:    info.RepName,
		CmpSite:   info.Website,
		CmpNum:    info.Phone,
		CmpAddy: info.Address.StreetAddress +
			", " + info.Address.City +
			" " + info.Address.State +
			" " + info.Address.Zip,
		Fee:     promo.FeeName,
		Code:    promo.Code,
		Amount:  "$" + promo.Value,
		Selfie:  info.Social.Selfie,
		FB:      info.Social.FB,
		Insta:   info.Social.Insta,
		Twitter: info.Social.Twitter,
		RegLink: info.RegLink,
	}, nil
}
