package users_models

// SecretKey holds the JWT signing secret generated by the first migration.
type SecretKey struct {
	Secret string `gorm:"column:secret"`
}

func (SecretKey) TableName() string {
	return "secret_keys"
}
