package services

import "time"

// nowFunc permite injetar o relógio nos testes de validade de cupom
type nowFunc func() time.Time

func defaultNow() time.Time {
	return time.Now()
}
