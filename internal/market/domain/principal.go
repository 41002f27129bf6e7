package domain

// Principal is the authenticated identity asserted by the external identity
// provider for the current request. The service never sees credentials,
// only this post-authentication view.
type Principal struct {
	ExternalID string
	Email      string
	Name       string
	ImageURL   string
	Phone      string
}
