package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateStateToken gera o token de estado opaco que correlaciona o início
// de uma autorização OAuth com o callback correspondente.
func GenerateStateToken() (string, error) {
	return gonanoid.Generate(characters, 21)
}
