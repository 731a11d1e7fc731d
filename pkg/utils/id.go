package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateID gera um código curto e legível para ocorrências e ordens de serviço
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
