package email

// Message - простое email сообщение
type Message struct {
	To      string
	Subject string
	Body    string
}

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет сообщение
	Send(msg *Message) error
}

// NoopProvider используется когда email отключен в конфигурации
type NoopProvider struct{}

func (p *NoopProvider) Send(msg *Message) error {
	return nil
}
