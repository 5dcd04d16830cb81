// Package format renders marketplace data as Telegram HTML messages.
// All user-facing text is Uzbek.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"marketbot/internal/domain"
)

const unknownLabel = "Noma'lum"

// Currency renders an amount with thousand separators and the UZS suffix
func Currency(amount int64) string {
	digits := strconv.FormatInt(amount, 10)
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}

	if negative {
		return "-" + b.String() + " UZS"
	}
	return b.String() + " UZS"
}

// Millis renders an epoch-millisecond timestamp as a local date
func Millis(ms int64) string {
	if ms == 0 {
		return unknownLabel
	}
	return time.UnixMilli(ms).Format("02.01.2006 15:04")
}

var orderStatusLabels = map[string]string{
	"CREATED":                              "🆕 Yaratilgan",
	"PACKING":                              "📦 Tayyorlanmoqda",
	"PENDING_DELIVERY":                     "⏳ Yuborish kutilmoqda",
	"DELIVERING":                           "🚚 Yuborilmoqda",
	"DELIVERED":                            "📦 Yetkazilgan",
	"ACCEPTED_AT_DP":                       "✅ DP da qabul qilingan",
	"DELIVERED_TO_CUSTOMER_DELIVERY_POINT": "📦 Mijozga yetkazilgan",
	"COMPLETED":                            "✅ Tugallangan",
	"CANCELED":                             "❌ Bekor qilingan",
	"PENDING_CANCELLATION":                 "⏳ Bekor qilish kutilmoqda",
	"RETURNED":                             "↩️ Qaytarilgan",
}

// OrderStatus renders an order status with its Uzbek label
func OrderStatus(status string) string {
	if label, ok := orderStatusLabels[status]; ok {
		return label
	}
	return "🔄 " + status
}

var paymentStatusLabels = map[string]string{
	"CREATED":   "🆕 Yaratilgan",
	"REFUNDED":  "↩️ Qaytarilgan",
	"CONFIRMED": "✅ Tasdiqlangan",
	"CANCELED":  "❌ Bekor qilingan",
}

// PaymentStatus renders a payment status with its Uzbek label
func PaymentStatus(status string) string {
	if label, ok := paymentStatusLabels[status]; ok {
		return label
	}
	return "🔄 " + status
}

var returnStatusLabels = map[string]string{
	"COMPLETED": "✅ Tugallangan",
	"PENDING":   "⏳ Kutilmoqda",
	"CANCELED":  "❌ Bekor qilingan",
	"ASSEMBLED": "📦 Yig'ilgan",
}

// ReturnStatus renders a return status with its Uzbek label
func ReturnStatus(status string) string {
	if label, ok := returnStatusLabels[status]; ok {
		return label
	}
	return "🔄 " + status
}

var returnTypeLabels = map[string]string{
	"DEFECTED": "❌ Nuqsonli",
	"RETURN":   "↩️ Oddiy qaytarish",
	"FBS":      "🚚 FBS qaytarish",
}

// ReturnType renders a return type with its Uzbek label
func ReturnType(returnType string) string {
	if label, ok := returnTypeLabels[returnType]; ok {
		return label
	}
	return "🔄 " + returnType
}

// EscapeHTML escapes text for the Telegram HTML parse mode
func EscapeHTML(text string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#x27;",
	)
	return replacer.Replace(text)
}

// ErrorMessage wraps an error text in the standard error banner
func ErrorMessage(text string) string {
	return "❌ <b>Xatolik:</b> " + EscapeHTML(text)
}

// SuccessMessage wraps a text in the standard success banner
func SuccessMessage(text string) string {
	return "✅ <b>Muvaffaqiyat:</b> " + EscapeHTML(text)
}

// Truncate shortens text to at most max runes with an ellipsis
func Truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max-3]) + "..."
}

// List joins pre-rendered items under a title with separators. Empty
// lists get a placeholder body.
func List(title string, items []string) string {
	if len(items) == 0 {
		return fmt.Sprintf("📭 <b>%s</b>\n\nMa'lumotlar topilmadi.", title)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 <b>%s</b>\n\n", title)
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item)
		if i < len(items)-1 {
			b.WriteString("➖➖➖➖➖➖➖➖\n")
		}
	}
	return b.String()
}

// Order renders one order card
func Order(o domain.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🛒 <b>Buyurtma #%d</b>\n", o.ID)
	fmt.Fprintf(&b, "🏪 Do'kon ID: %d\n", o.ShopID)
	fmt.Fprintf(&b, "📅 Sana: %s\n", Millis(o.DateCreated))
	fmt.Fprintf(&b, "📊 Holat: %s\n", OrderStatus(o.Status))
	fmt.Fprintf(&b, "💰 Narx: %s\n", Currency(o.Price))
	scheme := o.Scheme
	if scheme == "" {
		scheme = "FBS"
	}
	fmt.Fprintf(&b, "🚚 Turi: %s\n", scheme)
	if len(o.Items) > 0 {
		fmt.Fprintf(&b, "📦 Mahsulotlar: %d ta\n", len(o.Items))
	}
	return b.String()
}

// Shop renders one shop card
func Shop(s domain.Shop) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🏪 <b>%s</b>\n", EscapeHTML(s.Name))
	fmt.Fprintf(&b, "🆔 ID: <code>%d</code>\n", s.ID)
	if s.Status != "" {
		fmt.Fprintf(&b, "📊 Holat: %s\n", s.Status)
	}
	return b.String()
}

// Product renders one catalog product card
func Product(p domain.Product) string {
	title := p.Title
	if title == "" {
		title = unknownLabel
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📦 <b>%s</b>\n", EscapeHTML(title))
	if p.SkuTitle != "" {
		fmt.Fprintf(&b, "🏷 SKU: <code>%s</code>\n", EscapeHTML(p.SkuTitle))
	}
	fmt.Fprintf(&b, "💰 Narx: %s\n", Currency(p.Price))
	fmt.Fprintf(&b, "📊 Faol qoldiq: %d dona\n", p.QuantityActive)
	fmt.Fprintf(&b, "🚚 FBS qoldiq: %d dona\n", p.QuantityFbs)
	for _, sku := range p.Skus {
		fmt.Fprintf(&b, "   • <code>%d</code> %s\n", sku.SkuID, EscapeHTML(sku.SkuTitle))
	}
	return b.String()
}

// SkuStock renders one FBS stock line
func SkuStock(s domain.SkuStock) string {
	return fmt.Sprintf("🏷 <code>%s</code>\n   📊 Mavjud: %d dona, band: %d dona",
		EscapeHTML(s.Sku), s.Available, s.Reserved)
}

// Payment renders one expense entry
func Payment(p domain.Payment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>%s</b>\n", EscapeHTML(p.Name))
	fmt.Fprintf(&b, "   🆔 ID: %d\n", p.ID)
	fmt.Fprintf(&b, "   💰 Summa: %s\n", Currency(p.PaymentPrice))
	fmt.Fprintf(&b, "   📊 Holat: %s\n", PaymentStatus(p.Status))
	fmt.Fprintf(&b, "   📅 Sana: %s\n", Millis(p.DateCreated))
	fmt.Fprintf(&b, "   🔗 Manba: %s", p.Source)
	return b.String()
}

// FinanceOrder renders one sold item with its commission breakdown
func FinanceOrder(o domain.FinanceOrderItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>Buyurtma #%d</b>\n", o.OrderID)
	fmt.Fprintf(&b, "   🏷 SKU: %s\n", EscapeHTML(o.SkuTitle))
	fmt.Fprintf(&b, "   📦 Miqdori: %d dona\n", o.Amount)
	fmt.Fprintf(&b, "   💰 Narx: %s\n", Currency(o.SellerPrice))
	fmt.Fprintf(&b, "   💸 Komissiya: %s\n", Currency(o.Commission))
	fmt.Fprintf(&b, "   💵 Foyda: %s\n", Currency(o.SellerProfit))
	fmt.Fprintf(&b, "   📅 Sana: %s", Millis(o.Date))
	return b.String()
}

// Invoice renders one invoice line
func Invoice(inv domain.Invoice) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🧾 <b>%s</b>\n", EscapeHTML(inv.InvoiceNumber))
	fmt.Fprintf(&b, "   💰 Summa: %s\n", Currency(inv.FullPrice))
	fmt.Fprintf(&b, "   📅 Sana: %s", Millis(inv.DateCreated))
	if inv.ShopTitle != "" {
		fmt.Fprintf(&b, "\n   🏪 Do'kon: %s", EscapeHTML(inv.ShopTitle))
	}
	return b.String()
}

// InvoiceReturn renders one return line
func InvoiceReturn(ret domain.InvoiceReturn) string {
	var b strings.Builder
	fmt.Fprintf(&b, "↩️ <b>Qaytarish #%d</b>\n", ret.ID)
	if ret.ExternalNumber != "" {
		fmt.Fprintf(&b, "   🔢 Raqam: %s\n", EscapeHTML(ret.ExternalNumber))
	}
	fmt.Fprintf(&b, "   📊 Holat: %s\n", ReturnStatus(ret.Status))
	fmt.Fprintf(&b, "   🔄 Turi: %s\n", ReturnType(ret.Type))
	fmt.Fprintf(&b, "   📅 Sana: %s", Millis(ret.DateCreated))
	return b.String()
}

// PaymentInfo renders the seller balance summary
func PaymentInfo(info domain.PaymentInfo) string {
	var b strings.Builder
	b.WriteString("💳 <b>To'lov ma'lumotlari</b>\n\n")
	fmt.Fprintf(&b, "💰 Balans: %s\n", Currency(info.Balance))
	fmt.Fprintf(&b, "⏳ Kutilayotgan: %s\n", Currency(info.Pending))
	if info.BankName != "" {
		fmt.Fprintf(&b, "🏦 Bank: %s\n", EscapeHTML(info.BankName))
	}
	if info.AccountNumber != "" {
		fmt.Fprintf(&b, "🔢 Hisob raqami: <code>%s</code>\n", EscapeHTML(info.AccountNumber))
	}
	return b.String()
}

// CommissionInfo renders the seller commission summary
func CommissionInfo(info domain.CommissionInfo) string {
	var b strings.Builder
	b.WriteString("💸 <b>Komissiya ma'lumotlari</b>\n\n")
	fmt.Fprintf(&b, "💰 Jami komissiya: %s\n", Currency(info.Total))
	fmt.Fprintf(&b, "📅 Oylik komissiya: %s\n", Currency(info.Monthly))
	fmt.Fprintf(&b, "📊 Komissiya stavkasi: %.1f%%\n", info.Rate)
	return b.String()
}

// Activity renders the registration counters for the admin panel
func Activity(a domain.ActivityStats) string {
	var b strings.Builder
	b.WriteString("📈 <b>Faollik statistikasi</b>\n\n")
	fmt.Fprintf(&b, "📅 Bugun: %d ta\n", a.Today)
	fmt.Fprintf(&b, "📅 Hafta: %d ta\n", a.Week)
	fmt.Fprintf(&b, "📅 Oy: %d ta\n", a.Month)
	return b.String()
}

// UserRow renders one user line for the admin listing
func UserRow(u domain.User) string {
	name := u.FirstName
	if u.LastName != "" {
		name += " " + u.LastName
	}
	if name == "" {
		name = unknownLabel
	}

	var b strings.Builder
	fmt.Fprintf(&b, "👤 <b>%s</b>", EscapeHTML(name))
	if u.Username != "" {
		fmt.Fprintf(&b, " (@%s)", EscapeHTML(u.Username))
	}
	fmt.Fprintf(&b, "\n   🆔 <code>%d</code>", u.UserID)
	if u.HasCredential {
		b.WriteString("\n   🔑 API kalit mavjud")
	}
	if u.IsBlocked {
		b.WriteString("\n   🚫 Bloklangan")
	}
	return b.String()
}

// Stats renders the aggregate user counters for the admin panel
func Stats(s domain.UserStats) string {
	var b strings.Builder
	b.WriteString("📊 <b>Statistika</b>\n\n")
	fmt.Fprintf(&b, "👥 Jami foydalanuvchilar: %d\n", s.Total)
	fmt.Fprintf(&b, "🟢 Faol (7 kun): %d\n", s.ActiveLastWeek)
	fmt.Fprintf(&b, "🔑 API kalit bilan: %d\n", s.WithCredential)
	fmt.Fprintf(&b, "🚫 Bloklangan: %d\n", s.Blocked)
	return b.String()
}
