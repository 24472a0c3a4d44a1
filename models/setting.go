package models

// Setting is a single key/value row of the settings table. The table
// only ever holds the enumerated keys below; MosqueProfile is the typed
// view the API works with.
type Setting struct {
	Key   string `json:"key" gorm:"primaryKey;size:50"`
	Value string `json:"value" gorm:"type:text"`
}

func (Setting) TableName() string {
	return "settings"
}

// Enumerated setting keys. Writes with any other key are rejected so a
// typo fails at the API boundary instead of at render time.
const (
	SettingMosqueName    = "mosque_name"
	SettingMosqueAddress = "mosque_address"
	SettingMosquePhone   = "mosque_phone"
	SettingChairmanName  = "chairman_name"
	SettingTreasurerName = "treasurer_name"
	SettingMosqueLogo    = "mosque_logo"
)

// KnownSettingKeys lists every key the settings table may contain.
func KnownSettingKeys() []string {
	return []string{
		SettingMosqueName,
		SettingMosqueAddress,
		SettingMosquePhone,
		SettingChairmanName,
		SettingTreasurerName,
		SettingMosqueLogo,
	}
}

// IsKnownSettingKey reports whether key is one of the enumerated keys.
func IsKnownSettingKey(key string) bool {
	for _, k := range KnownSettingKeys() {
		if k == key {
			return true
		}
	}
	return false
}

// MosqueProfile is the typed settings record exposed by the API.
type MosqueProfile struct {
	MosqueName    string `json:"mosque_name"`
	MosqueAddress string `json:"mosque_address"`
	MosquePhone   string `json:"mosque_phone"`
	ChairmanName  string `json:"chairman_name"`
	TreasurerName string `json:"treasurer_name"`
	MosqueLogo    string `json:"mosque_logo"`
}

// ProfileFromSettings builds the typed profile from raw settings rows.
func ProfileFromSettings(rows []Setting) MosqueProfile {
	var p MosqueProfile
	for _, row := range rows {
		switch row.Key {
		case SettingMosqueName:
			p.MosqueName = row.Value
		case SettingMosqueAddress:
			p.MosqueAddress = row.Value
		case SettingMosquePhone:
			p.MosquePhone = row.Value
		case SettingChairmanName:
			p.ChairmanName = row.Value
		case SettingTreasurerName:
			p.TreasurerName = row.Value
		case SettingMosqueLogo:
			p.MosqueLogo = row.Value
		}
	}
	return p
}

// Settings flattens the profile back into key/value rows, in the order
// of KnownSettingKeys.
func (p MosqueProfile) Settings() []Setting {
	return []Setting{
		{Key: SettingMosqueName, Value: p.MosqueName},
		{Key: SettingMosqueAddress, Value: p.MosqueAddress},
		{Key: SettingMosquePhone, Value: p.MosquePhone},
		{Key: SettingChairmanName, Value: p.ChairmanName},
		{Key: SettingTreasurerName, Value: p.TreasurerName},
		{Key: SettingMosqueLogo, Value: p.MosqueLogo},
	}
}
