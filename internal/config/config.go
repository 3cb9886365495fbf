package config

type Config interface {
	AuthHeader() string
	AuthUsers() map[string]string
	IdentityPass() int
	Color() bool
}

func MustLoad() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg, err := parse()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) AuthHeader() string { return c.authHeader }
func (c *config) IdentityPass() int  { return c.identityPass }
func (c *config) Color() bool        { return c.color }

func (c *config) AuthUsers() map[string]string {
	users := make(map[string]string, len(c.authUsers))
	for k, v := range c.authUsers {
		users[k] = v
	}
	return users
}
