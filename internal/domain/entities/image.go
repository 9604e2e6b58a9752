package entities

// Image é uma imagem de produto hospedada no object storage externo.
// PublicID identifica o objeto no storage, SecureURL é a URL pública.
type Image struct {
	ID        string
	ProductID string
	PublicID  string
	SecureURL string
}
