package models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Alamat       string `json:"alamat"`
	Wilayah      string `json:"wilayah"`
	Tlp          string `json:"tlp"`
	Ewallet      string `json:"ewallet"`
	PasswordHash string `json:"-"` // JANGAN dikirim ke frontend
	Role         string `json:"role"`
}

type PublicUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Alamat   string `json:"alamat"`
	Wilayah  string `json:"wilayah"`
	Tlp      string `json:"tlp"`
	Ewallet  string `json:"ewallet"`
	Role     string `json:"role"`
}

func (u *User) ToPublic() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Alamat:   u.Alamat,
		Wilayah:  u.Wilayah,
		Tlp:      u.Tlp,
		Ewallet:  u.Ewallet,
		Role:     u.Role,
	}
}
