package goquery

// NewLinkedInProfile returns the selector profile tuned to LinkedIn's
// messaging DOM. Selectors target the msg-* class conventions used by the
// conversation view; LinkedIn revises its markup regularly, so these are
// expected to need maintenance.
func NewLinkedInProfile() *Profile {
	return &Profile{
		name:  "linkedin",
		hosts: []string{"linkedin.com"},
		containerSelectors: []string{
			"ul.msg-s-message-list-content",
			".msg-s-message-list-content",
			".msg-s-message-list",
			".msg-convo-wrapper",
		},
		messageSelectors: []string{
			"li.msg-s-message-list__event",
			".msg-s-event-listitem",
			".msg-s-message-group",
		},
		timestampSelectors: []string{
			"time.msg-s-message-group__timestamp",
			".msg-s-message-group__timestamp",
			"time.msg-s-message-list__time-heading",
		},
		senderSelectors: []string{
			".msg-s-message-group__name",
			"a.msg-s-event-listitem__link",
			"span[data-anonymize=\"person-name\"]",
		},
	}
}
