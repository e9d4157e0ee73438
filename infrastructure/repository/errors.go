package repository

import "errors"

var ErrNotFound = errors.New("registro não encontrado")
