package application

import (
	"context"
	"log/slog"
	"net/mail"

	"github.com/microcosm-cc/bluemonday"

	"github.com/ericfisherdev/formfill/internal/domain/model"
	"github.com/ericfisherdev/formfill/internal/domain/port/driven"
)

// maxEmailSuggestions caps the distinct addresses offered per email field.
const maxEmailSuggestions = 2

// SuggestionBuilder turns classified fields into candidate values. Identity
// and payment values come from the current profile; email fields are
// additionally offered addresses saved as logins for the page's origin.
type SuggestionBuilder struct {
	store     driven.CredentialStore
	profiles  *ProfileProvider
	sanitizer *bluemonday.Policy
	logger    *slog.Logger
}

// NewSuggestionBuilder creates a SuggestionBuilder. store may be nil, in
// which case only profile values are offered.
func NewSuggestionBuilder(store driven.CredentialStore, profiles *ProfileProvider, logger *slog.Logger) *SuggestionBuilder {
	if logger == nil {
		logger = slog.Default()
	}
	return &SuggestionBuilder{
		store:     store,
		profiles:  profiles,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger,
	}
}

// Build produces the suggestions for one request. It never fails: missing
// data, store errors and invalid page URLs all degrade to fewer entries. The
// result only holds kinds present in classified and is empty when there is
// nothing to offer.
func (b *SuggestionBuilder) Build(ctx context.Context, classified []model.ClassifiedField, pageURL string) model.SuggestionSet {
	set := model.SuggestionSet{}
	if len(classified) == 0 {
		return set
	}

	profile := b.profiles.Get()

	var (
		nameOffered bool
		emails      []emailCandidate
		emailsReady bool
	)

	for _, field := range classified {
		switch field.Kind {
		case model.FieldKindFullName:
			// Single-valued: only the first name field is offered.
			if nameOffered {
				continue
			}
			nameOffered = true
			addValue(set, field, profile.FullName, "Full name")

		case model.FieldKindTelephoneNumber:
			addValue(set, field, profile.WorkPhone, "Work phone")

		case model.FieldKindEmailAddress:
			if !emailsReady {
				emails = b.emailCandidates(ctx, pageURL, profile)
				emailsReady = true
			}
			for _, c := range emails {
				set.Add(field.Kind, model.SuggestionEntry{
					Field: field.Field,
					Value: c.address,
					Label: c.qualifier + " (" + c.display + ")",
				})
			}

		case model.FieldKindCreditCardNumber:
			if profile.Card.Number != "" {
				set.Add(field.Kind, model.SuggestionEntry{
					Field: field.Field,
					Value: profile.Card.Number,
					Label: "Work credit card (•••• " + lastN(profile.Card.Number, 4) + ")",
				})
			}

		case model.FieldKindCreditCardExpiry:
			if profile.Card.Expiry != "" {
				set.Add(field.Kind, model.SuggestionEntry{
					Field: field.Field,
					Value: profile.Card.Expiry,
					Label: "Work credit card expiry (" + formatExpiry(profile.Card.Expiry) + ")",
				})
			}

		case model.FieldKindCreditCardSecurityCode:
			if profile.Card.SecurityCode != "" {
				set.Add(field.Kind, model.SuggestionEntry{
					Field: field.Field,
					Value: profile.Card.SecurityCode,
					Label: "Work credit card security code",
				})
			}
		}
	}

	return set
}

type emailCandidate struct {
	address   string
	display   string
	qualifier string
}

// emailCandidates returns at most maxEmailSuggestions distinct addresses:
// saved login usernames for the page's origin first, in insertion order,
// then the profile's work and personal addresses.
func (b *SuggestionBuilder) emailCandidates(ctx context.Context, pageURL string, profile model.Profile) []emailCandidate {
	var out []emailCandidate
	seen := make(map[string]bool)

	add := func(address, display, qualifier string) {
		if len(out) >= maxEmailSuggestions || address == "" || seen[address] {
			return
		}
		seen[address] = true
		out = append(out, emailCandidate{address: address, display: display, qualifier: qualifier})
	}

	for _, cred := range b.savedCredentials(ctx, pageURL) {
		if !isEmailAddress(cred.Username) {
			continue
		}
		// Saved usernames originate from web pages; strip any markup before
		// the value reaches a label rendered by the host.
		add(cred.Username, b.sanitizer.Sanitize(cred.Username), "Saved login")
	}
	add(profile.WorkEmail, profile.WorkEmail, "Work email")
	add(profile.PersonalEmail, profile.PersonalEmail, "Personal email")

	return out
}

func (b *SuggestionBuilder) savedCredentials(ctx context.Context, pageURL string) []model.Credential {
	if b.store == nil || pageURL == "" {
		return nil
	}
	creds, err := b.store.Get(ctx, pageURL)
	if err != nil {
		b.logger.Warn("failed to load saved credentials", "url", pageURL, "error", err)
		return nil
	}
	return creds
}

// addValue offers value labelled "<qualifier> (<value>)". Empty profile
// values are skipped.
func addValue(set model.SuggestionSet, field model.ClassifiedField, value, qualifier string) {
	if value == "" {
		return
	}
	set.Add(field.Kind, model.SuggestionEntry{
		Field: field.Field,
		Value: value,
		Label: qualifier + " (" + value + ")",
	})
}

// isEmailAddress accepts bare addresses only; display-name forms are rejected.
func isEmailAddress(s string) bool {
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Name == "" && addr.Address == s
}

func lastN(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}

// formatExpiry renders MMYY as MM/YY; other shapes are shown unchanged.
func formatExpiry(exp string) string {
	if len(exp) != 4 {
		return exp
	}
	for _, ch := range exp {
		if ch < '0' || ch > '9' {
			return exp
		}
	}
	return exp[:2] + "/" + exp[2:]
}
