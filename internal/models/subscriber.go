package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactKind - канал доставки, выбранный для подписчика
type ContactKind string

const (
	ContactNone     ContactKind = "none"
	ContactSMS      ContactKind = "sms"
	ContactWebhook  ContactKind = "webhook"
	ContactTelegram ContactKind = "telegram"
)

// ContactMethod - размеченное объединение: заполнены только поля выбранного Kind
type ContactMethod struct {
	Kind   ContactKind `json:"kind"`
	Phone  string      `json:"phone,omitempty"`
	Hook   string      `json:"hook,omitempty"`
	Token  string      `json:"-"`
	ChatID int64       `json:"chat_id,omitempty"`
}

func SMSContact(phone string) ContactMethod {
	return ContactMethod{Kind: ContactSMS, Phone: phone}
}

func WebhookContact(hook, token string) ContactMethod {
	return ContactMethod{Kind: ContactWebhook, Hook: hook, Token: token}
}

func TelegramContact(chatID int64) ContactMethod {
	return ContactMethod{Kind: ContactTelegram, ChatID: chatID}
}

// IsNone - канал не выбран; нулевое значение тоже считается отсутствием канала
func (c ContactMethod) IsNone() bool {
	return c.Kind == ContactNone || c.Kind == ""
}

// ResolveContact выбирает ровно один канал по заполненным полям.
// Приоритет: phone, затем hook+token, затем telegram chat id.
func ResolveContact(phone, hook, token string, chatID int64) ContactMethod {
	switch {
	case phone != "":
		return SMSContact(phone)
	case hook != "" && token != "":
		return WebhookContact(hook, token)
	case chatID != 0:
		return TelegramContact(chatID)
	default:
		return ContactMethod{Kind: ContactNone}
	}
}

// Subscriber - точка, за которой следит пользователь
type Subscriber struct {
	ID             uuid.UUID     `json:"id"`
	Latitude       float64       `json:"latitude"`
	Longitude      float64       `json:"longitude"`
	Contact        ContactMethod `json:"contact"`
	LastNotifiedAt *time.Time    `json:"last_notified_at,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}
