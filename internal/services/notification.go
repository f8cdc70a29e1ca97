package services

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"car-rental-backend/internal/models"
)

// NotificationKind - тип сообщения клиенту
type NotificationKind string

const (
	NotificationApproved  NotificationKind = "approved"
	NotificationCompleted NotificationKind = "completed"
	NotificationCancelled NotificationKind = "cancelled"
	NotificationCreated   NotificationKind = "created" // бронирование оформлено администратором
)

const defaultLocale = "fr"

// NotificationConfig - параметры формирования ссылки WhatsApp
type NotificationConfig struct {
	CountryCode   string
	LinkBase      string
	Currency      string
	PublicSiteURL string
	DefaultLocale string
}

// Notification - готовое сообщение и ссылка для открытия чата с клиентом
type Notification struct {
	Kind   NotificationKind `json:"kind"`
	Locale string           `json:"locale"`
	Phone  string           `json:"phone"`
	Text   string           `json:"text"`
	Link   string           `json:"link"`
}

// NotificationKindFor сопоставляет статус бронирования с типом сообщения.
func NotificationKindFor(status models.BookingStatus) (NotificationKind, bool) {
	switch status {
	case models.BookingStatusApproved:
		return NotificationApproved, true
	case models.BookingStatusCompleted:
		return NotificationCompleted, true
	case models.BookingStatusCancelled:
		return NotificationCancelled, true
	}
	return "", false
}

// BuildNotification формирует сообщение для арендатора.
// Booking должен быть загружен вместе с User и Car. Если у клиента нет телефона, возвращает false.
func BuildNotification(b *models.Booking, kind NotificationKind, locale string, cfg NotificationConfig) (Notification, bool) {
	phone := NormalizePhone(b.User.Phone, cfg.CountryCode)
	if phone == "" {
		return Notification{}, false
	}

	cat, locale := catalogFor(locale, cfg.DefaultLocale)
	text := cat.render(b, kind, cfg)

	base := cfg.LinkBase
	if base == "" {
		base = "https://web.whatsapp.com/send"
	}
	link := fmt.Sprintf("%s?phone=%s&text=%s", base, phone, url.QueryEscape(text))

	return Notification{
		Kind:   kind,
		Locale: locale,
		Phone:  phone,
		Text:   text,
		Link:   link,
	}, true
}

// NormalizePhone приводит номер к международному виду без "+": 0612... -> 212612...
func NormalizePhone(phone, countryCode string) string {
	p := strings.TrimSpace(phone)
	if p == "" {
		return ""
	}
	p = strings.TrimPrefix(p, "+")
	p = strings.TrimPrefix(p, "0")
	if countryCode != "" && !strings.HasPrefix(p, countryCode) {
		p = countryCode + p
	}
	return p
}

type catalog struct {
	heading  map[NotificationKind]string
	intro    map[NotificationKind]string
	closing  map[NotificationKind]string
	name     string
	phone    string
	car      string
	returnAt string
	from     string
	to       string
	total    string
	feedback string
	months   [12]string
	// формат длинной даты: день, месяц, год
	longDate func(day int, month string, year int) string
}

var catalogs = map[string]*catalog{
	"fr": {
		heading: map[NotificationKind]string{
			NotificationApproved:  "✅ Votre réservation a été approuvée !",
			NotificationCompleted: "✅ Votre location est terminée !",
			NotificationCancelled: "❌ Votre réservation a été annulée.",
			NotificationCreated:   "✅ Une nouvelle réservation a été créée pour vous !",
		},
		intro: map[NotificationKind]string{
			NotificationApproved:  "Merci de votre confiance. Voici les détails de votre réservation :",
			NotificationCompleted: "Merci d'avoir utilisé notre site et nos véhicules. Nous espérons que votre expérience a été agréable.\n\n📝 Détails de votre réservation :",
			NotificationCancelled: "Détails de la réservation annulée :",
			NotificationCreated:   "Merci de votre confiance. Voici les détails de votre réservation :",
		},
		closing: map[NotificationKind]string{
			NotificationApproved:  "Nous restons à votre disposition pour toute question. Bonne route ! 🚗✨",
			NotificationCompleted: "Au plaisir de vous revoir bientôt. Bonne route ! 🚗✨",
			NotificationCancelled: "Pour toute question, n'hésitez pas à nous contacter.",
			NotificationCreated:   "Nous restons à votre disposition pour toute question. Bonne route ! 🚗✨",
		},
		name:     "👤 Nom",
		phone:    "📞 Téléphone",
		car:      "🚗 Véhicule",
		returnAt: "📍 Lieu de retour",
		from:     "📅 Du",
		to:       "📅 Au",
		total:    "💰 Prix total",
		feedback: "⭐️ Nous serions ravis d'avoir votre avis !\nDonnez votre feedback ici :",
		months: [12]string{"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		longDate: func(d int, m string, y int) string { return fmt.Sprintf("%d %s %d", d, m, y) },
	},
	"en": {
		heading: map[NotificationKind]string{
			NotificationApproved:  "✅ Your booking has been approved!",
			NotificationCompleted: "✅ Your rental is complete!",
			NotificationCancelled: "❌ Your booking has been cancelled.",
			NotificationCreated:   "✅ A new booking has been created for you!",
		},
		intro: map[NotificationKind]string{
			NotificationApproved:  "Thank you for your trust. Here are your booking details:",
			NotificationCompleted: "Thank you for using our website and our vehicles. We hope you enjoyed your experience.\n\n📝 Your booking details:",
			NotificationCancelled: "Details of the cancelled booking:",
			NotificationCreated:   "Thank you for your trust. Here are your booking details:",
		},
		closing: map[NotificationKind]string{
			NotificationApproved:  "We remain at your disposal for any question. Have a good trip! 🚗✨",
			NotificationCompleted: "We look forward to seeing you again. Have a good trip! 🚗✨",
			NotificationCancelled: "If you have any questions, feel free to contact us.",
			NotificationCreated:   "We remain at your disposal for any question. Have a good trip! 🚗✨",
		},
		name:     "👤 Name",
		phone:    "📞 Phone",
		car:      "🚗 Vehicle",
		returnAt: "📍 Return location",
		from:     "📅 From",
		to:       "📅 To",
		total:    "💰 Total price",
		feedback: "⭐️ We would love to hear from you!\nLeave your feedback here:",
		months: [12]string{"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December"},
		longDate: func(d int, m string, y int) string { return fmt.Sprintf("%s %d, %d", m, d, y) },
	},
	"ar": {
		heading: map[NotificationKind]string{
			NotificationApproved:  "✅ تمت الموافقة على حجزك!",
			NotificationCompleted: "✅ انتهت فترة الكراء!",
			NotificationCancelled: "❌ تم إلغاء حجزك.",
			NotificationCreated:   "✅ تم إنشاء حجز جديد لك!",
		},
		intro: map[NotificationKind]string{
			NotificationApproved:  "شكرا على ثقتكم. إليكم تفاصيل حجزكم:",
			NotificationCompleted: "شكرا لاستعمالكم موقعنا وسياراتنا. نتمنى أن تكون تجربتكم ممتعة.\n\n📝 تفاصيل حجزكم:",
			NotificationCancelled: "تفاصيل الحجز الملغى:",
			NotificationCreated:   "شكرا على ثقتكم. إليكم تفاصيل حجزكم:",
		},
		closing: map[NotificationKind]string{
			NotificationApproved:  "نحن رهن إشارتكم لأي استفسار. طريق السلامة! 🚗✨",
			NotificationCompleted: "نتطلع لرؤيتكم مجددا. طريق السلامة! 🚗✨",
			NotificationCancelled: "لأي استفسار، لا تترددوا في التواصل معنا.",
			NotificationCreated:   "نحن رهن إشارتكم لأي استفسار. طريق السلامة! 🚗✨",
		},
		name:     "👤 الاسم",
		phone:    "📞 الهاتف",
		car:      "🚗 السيارة",
		returnAt: "📍 مكان الإرجاع",
		from:     "📅 من",
		to:       "📅 إلى",
		total:    "💰 السعر الإجمالي",
		feedback: "⭐️ يسعدنا معرفة رأيكم!\nشاركونا رأيكم هنا:",
		months: [12]string{"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
			"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر"},
		longDate: func(d int, m string, y int) string { return fmt.Sprintf("%d %s %d", d, m, y) },
	},
}

// catalogFor возвращает тексты для языка, откатываясь на язык по умолчанию, затем на французский.
func catalogFor(locale, fallback string) (*catalog, string) {
	for _, l := range []string{locale, fallback, defaultLocale} {
		l = strings.ToLower(strings.TrimSpace(l))
		if c, ok := catalogs[l]; ok {
			return c, l
		}
	}
	return catalogs[defaultLocale], defaultLocale
}

func (c *catalog) formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return c.longDate(t.Day(), c.months[t.Month()-1], t.Year())
}

func (c *catalog) render(b *models.Booking, kind NotificationKind, cfg NotificationConfig) string {
	var sb strings.Builder
	line := func(label, value string) {
		sb.WriteString(label)
		sb.WriteString(" : ")
		sb.WriteString(value)
		sb.WriteByte('\n')
	}

	sb.WriteString(c.heading[kind])
	sb.WriteString("\n\n")
	sb.WriteString(c.intro[kind])
	if kind == NotificationCompleted {
		sb.WriteByte('\n')
	} else {
		sb.WriteString("\n\n")
	}

	line(c.name, b.User.Name)
	if kind != NotificationCompleted {
		line(c.phone, strings.TrimSpace(b.User.Phone))
	}
	line(c.car, b.Car.Name)
	if kind == NotificationApproved || kind == NotificationCancelled {
		returnAt := ""
		if b.ReturnLocation != nil {
			returnAt = *b.ReturnLocation
		}
		line(c.returnAt, returnAt)
	}
	line(c.from, c.formatDate(b.StartDate))
	line(c.to, c.formatDate(b.EndDate))
	line(c.total, formatAmount(b.TotalPrice, cfg.Currency))
	sb.WriteByte('\n')

	if kind == NotificationCompleted {
		sb.WriteString(c.feedback)
		sb.WriteByte('\n')
		sb.WriteString(strings.TrimRight(cfg.PublicSiteURL, "/"))
		sb.WriteString("/my-bookings\n\n")
	}
	sb.WriteString(c.closing[kind])
	return sb.String()
}

func formatAmount(amount float64, currency string) string {
	if currency == "" {
		currency = "MAD"
	}
	return strconv.FormatFloat(amount, 'f', -1, 64) + " " + currency
}
