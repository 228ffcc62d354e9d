package domain

// User is a local read model of a profile owned by the external identity
// provider. The engine keeps just enough to address notifications; there are
// no credentials here and no signup path.
type User struct {
	ID        int32  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	PushToken string `json:"push_token,omitempty"`
}
