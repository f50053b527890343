package utils

import (
	"bytes"
	"encoding/json"

	"github.com/sirupsen/logrus"
)

// PrettyJson formata um valor como JSON indentado para logs de depuração.
// Valores já serializados em []byte são apenas indentados.
func PrettyJson(in any) string {
	raw, ok := in.([]byte)
	if !ok {
		var err error
		raw, err = json.Marshal(in)
		if err != nil {
			logrus.WithError(err).Warn("Erro ao serializar payload para log")
			return ""
		}
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "\t"); err != nil {
		return string(raw)
	}

	return out.String()
}
