package lcu

type Role int

const (
	RoleADC Role = iota
	RoleMID
	RoleTOP
	RoleJGL
	RoleSUPP
	RoleUnsure
)

func (r Role) String() string {
	switch r {
	case RoleADC:
		return "ADC"
	case RoleMID:
		return "MID"
	case RoleTOP:
		return "TOP"
	case RoleJGL:
		return "JGL"
	case RoleSUPP:
		return "SUPP"
	default:
		return "UNSURE"
	}
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

type (
	Champion struct {
		Name string `json:"name"`
		Role Role   `json:"role"`
	}
	// mySelection is the part of the champ select selection we read.
	mySelection struct {
		ChampionID *int `json:"championId"`
	}
)
