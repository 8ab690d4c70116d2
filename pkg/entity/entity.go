package entity

// Credentials is the admin login for a controller, resolved once at the
// start of a run and handed to the session store. Never persisted.
type Credentials struct {
	Username string
	Password string
}

// User is one account record as vManage returns it from
// dataservice/admin/user.
type User struct {
	UserName    string   `json:"userName"`
	Description string   `json:"description,omitempty"`
	Group       []string `json:"group,omitempty"`
	Locale      string   `json:"locale,omitempty"`
}
