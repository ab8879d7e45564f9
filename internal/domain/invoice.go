package domain

// InvoiceParty indica de quem é a fatura anexada ao pedido
type InvoiceParty string

const (
	InvoicePartyClient InvoiceParty = "client"
	InvoicePartyAdmin  InvoiceParty = "admin"
)

// InvoiceKind diferencia o documento da fatura da foto da fatura
type InvoiceKind string

const (
	InvoiceKindFile    InvoiceKind = "file"
	InvoiceKindPicture InvoiceKind = "picture"
)

type InvoiceAttachment struct {
	Column    string
	Directory string
	MaxSize   int64
	// Extensões aceitas, sempre em minúsculas e com ponto
	Extensions []string
}

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// InvoiceAttachmentFor devolve coluna, diretório e limites do anexo.
// O segundo retorno é false para combinações desconhecidas.
func InvoiceAttachmentFor(party InvoiceParty, kind InvoiceKind) (InvoiceAttachment, bool) {
	if party != InvoicePartyClient && party != InvoicePartyAdmin {
		return InvoiceAttachment{}, false
	}

	switch kind {
	case InvoiceKindFile:
		return InvoiceAttachment{
			Column:     string(party) + "_invoice_file",
			Directory:  string(party) + "-invoices",
			MaxSize:    5 << 20,
			Extensions: append([]string{".pdf"}, imageExtensions...),
		}, true
	case InvoiceKindPicture:
		return InvoiceAttachment{
			Column:     string(party) + "_invoice_picture",
			Directory:  string(party) + "-invoice-pictures",
			MaxSize:    2 << 20,
			Extensions: imageExtensions,
		}, true
	}

	return InvoiceAttachment{}, false
}

// Accepts verifica se a extensão informada é aceita pelo anexo
func (a InvoiceAttachment) Accepts(ext string) bool {
	for _, allowed := range a.Extensions {
		if allowed == ext {
			return true
		}
	}
	return false
}

// InvoicePath devolve o caminho do anexo atualmente gravado no pedido
func (o *Order) InvoicePath(party InvoiceParty, kind InvoiceKind) *string {
	switch {
	case party == InvoicePartyClient && kind == InvoiceKindFile:
		return o.ClientInvoiceFile
	case party == InvoicePartyClient && kind == InvoiceKindPicture:
		return o.ClientInvoicePicture
	case party == InvoicePartyAdmin && kind == InvoiceKindFile:
		return o.AdminInvoiceFile
	case party == InvoicePartyAdmin && kind == InvoiceKindPicture:
		return o.AdminInvoicePicture
	}
	return nil
}

// AttachInvoiceRequest é o upload de um anexo de fatura para um pedido
type AttachInvoiceRequest struct {
	OrderID  int64
	Party    InvoiceParty
	Kind     InvoiceKind
	FileName string
	Size     int64
}
