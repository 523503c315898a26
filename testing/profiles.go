package main

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// connection is the resolved daemon target, whether it came from flags or
// from a profile.
type connection struct {
	Address  string
	User     string
	Password string
}

// Profile is one named daemon entry in the profiles file. DefaultAmount,
// when set, fills the amount parameter of payment methods that were invoked
// without one.
type Profile struct {
	Address       string  `yaml:"address" validate:"required,url"`
	User          string  `yaml:"user" validate:"required"`
	Password      string  `yaml:"password" validate:"required"`
	DefaultAmount *string `yaml:"default_amount,omitempty" validate:"omitempty,decstring"`
}

func (p *Profile) connection() connection {
	return connection{
		Address:  p.Address,
		User:     p.User,
		Password: p.Password,
	}
}

type profilesFile struct {
	Daemons map[string]Profile `yaml:"daemons"`
}

// loadProfile reads the profiles file and returns the named entry.
func loadProfile(path, name string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading profiles file")
	}

	var file profilesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "parsing profiles file")
	}

	profile, ok := file.Daemons[name]
	if !ok {
		return nil, errors.Errorf("profile %q not found in %s", name, path)
	}

	if err := getValidator().Struct(&profile); err != nil {
		return nil, errors.Wrapf(err, "invalid profile %q", name)
	}

	return &profile, nil
}

func getValidator() *validator.Validate {
	validate := validator.New()

	if err := validate.RegisterValidation("decstring", func(fl validator.FieldLevel) bool {
		_, err := decimal.NewFromString(fmt.Sprint(fl.Field()))
		return err == nil
	}); err != nil {
		panic(fmt.Sprintf("failed to register decstring validation: %v", err))
	}
	return validate
}
