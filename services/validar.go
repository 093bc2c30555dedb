package services

import "github.com/go-playground/validator/v10"

// validate es el validador compartido de los services. Se apoya en los
// tags `validate` de los modelos.
var validate = validator.New()
