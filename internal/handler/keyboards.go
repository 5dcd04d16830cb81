package handler

import tele "gopkg.in/telebot.v3"

// Main menu reply buttons
var (
	btnFBSOrders     = tele.Btn{Text: "📦 FBS Buyurtmalar"}
	btnFBSStatistics = tele.Btn{Text: "📊 FBS Statistika"}
	btnFinance       = tele.Btn{Text: "💰 Moliyaviy hisobot"}
	btnInvoices      = tele.Btn{Text: "💳 Hisob-fakturalar"}
	btnProducts      = tele.Btn{Text: "🛍 Mahsulotlar"}
	btnShops         = tele.Btn{Text: "🏪 Do'konlarim"}
	btnSettings      = tele.Btn{Text: "⚙️ Sozlamalar"}
	btnHelp          = tele.Btn{Text: "📞 Yordam"}
	btnSupport       = tele.Btn{Text: "👥 Qo'llab quvvatlash guruhi"}
	btnAdminPanel    = tele.Btn{Text: "🔐 Admin Panel"}
)

// Callback uniques. The inline keyboards and the callback dispatcher
// share these.
const (
	cbMainMenu = "main_menu"

	cbFBSOrders        = "fbs_orders"
	cbFBSOrdersCount   = "fbs_orders_count"
	cbFBSStocks        = "fbs_stocks"
	cbFBSReturnReasons = "fbs_return_reasons"
	cbFBSOrderDetails  = "fbs_order_details"

	cbFBSShopStats    = "fbs_shop_statistics"
	cbFBSStatusStats  = "fbs_status_statistics"
	cbFBSStockStats   = "fbs_stock_statistics"
	cbFBSFinanceStats = "fbs_finance_statistics"

	cbFinanceExpenses    = "finance_expenses"
	cbFinanceOrders      = "finance_orders"
	cbFinancePaymentInfo = "finance_payment_info"
	cbFinanceCommission  = "finance_commission"

	cbInvoices       = "invoices"
	cbInvoiceReturns = "invoice_returns"
	cbShopInvoices   = "shop_invoices"
	cbShopReturns    = "shop_returns"

	cbProductSearch = "product_search"
	cbProductPrice  = "product_update_price"

	cbShopsList = "shops_list"

	cbAddAPI           = "add_api"
	cbChangeAPI        = "change_api"
	cbDeleteAPI        = "delete_api"
	cbConfirmDeleteAPI = "confirm_delete_api"
	cbCheckAPI         = "check_api_status"

	cbAdminStats    = "admin_stats"
	cbAdminUsers    = "admin_users"
	cbAdminAPIUsers = "admin_api_users"
	cbAdminActivity = "admin_activity"
	cbAdminBlock    = "admin_block_user"
	cbAdminUnblock  = "admin_unblock_user"
	cbAdminList     = "admin_admins"

	cbOrderConfirm = "order_confirm"
	cbOrderCancel  = "order_cancel"
)

func mainMenuKeyboard(isAdmin bool) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}

	rows := []tele.Row{
		menu.Row(btnFBSOrders, btnFBSStatistics),
		menu.Row(btnFinance, btnInvoices),
		menu.Row(btnProducts, btnShops),
		menu.Row(btnSettings, btnHelp),
		menu.Row(btnSupport),
	}
	if isAdmin {
		rows = append(rows, menu.Row(btnAdminPanel))
	}
	menu.Reply(rows...)
	return menu
}

func fbsMenuKeyboard() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(
			menu.Data("📋 Buyurtmalar ro'yxati", cbFBSOrders),
			menu.Data("📈 Buyurtmalar soni", cbFBSOrdersCount),
		),
		menu.Row(
			menu.Data("📦 Qoldiqlar", cbFBSStocks),
			menu.Data("🔄 Qaytarish sabablari", cbFBSReturnReasons),
		),
		menu.Row(
			menu.Data("🆔 Buyurtma tafsiloti", cbFBSOrderDetails),
		),
		menu.Row(menu.Data("🔙 Orqaga", cbMainMenu)),
	)
	return menu
}

func fbsStatisticsKeyboard() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(
			menu.Data("📊 Buyurtmalar statistikasi", cbFBSOrdersCount),
			menu.Data("📈 Do'kon bo'yicha", cbFBSShopStats),
		),
		menu.Row(
			menu.Data("🔄 Status bo'yicha", cbFBSStatusStats),
			menu.Data("📦 Qoldiq statistikasi", cbFBSStockStats),
		),
		menu.Row(
			menu.Data("💰 Moliyaviy statistika", cbFBSFinanceStats),
		),
		menu.Row(menu.Data("🔙 Orqaga", cbMainMenu)),
	)
	return menu
}

func financeMenuKeyboard() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(
			menu.Data("💸 Xarajatlar", cbFinanceExpenses),
			menu.Data("📊 Buyurtmalar", cbFinanceOrders),
		),
		menu.Row(
			menu.Data("💳 To'lov ma'lumotlari", cbFinancePaymentInfo),
			menu.Data("💰 Komissiya", cbFinanceCommission),
		),
		menu.Row(menu.Data("🔙 Orqaga", cbMainMenu)),
	)
	return menu
}

func invoiceMenuKeyboard() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(
			menu.Data("📄 Hisob-fakturalar", cbInvoices),
			menu.Data("↩️ Qaytarishlar", cbInvoiceReturns),
		),
		menu.Row(
			menu.Data("🏪 Do'kon fakturalari", cbShopInvoices),
			menu.Data("🏪 Do'kon qaytarishlari", cbShopReturns),
		),
		menu.Row(menu.Data("🔙 Orqaga", cbMainMenu)),
	)
	return menu
}

func productMenuKeyboard() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(
			menu.Data("🔍 Mahsulot qidirish", cbProductSearch),
			menu.Data("💰 Narx yangilash", cbProductPrice),
		),
		menu.Row(menu.Data("🔙 Orqaga", cbMainMenu)),
	)
	return menu
}

func shopMenuKeyboard() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(menu.Data("🏪 Do'konlar ro'yxati", cbShopsList)),
		menu.Row(menu.Data("🔙 Orqaga", cbMainMenu)),
	)
	return menu
}

func settingsKeyboard() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(menu.Data("🔑 API kalitini o'zgartirish", cbChangeAPI)),
		menu.Row(menu.Data("🗑 API kalitini o'chirish", cbDeleteAPI)),
		menu.Row(menu.Data("🔍 API holatini tekshirish", cbCheckAPI)),
		menu.Row(menu.Data("🔙 Orqaga", cbMainMenu)),
	)
	return menu
}

func apiManagementKeyboard() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(menu.Data("🔄 API kiritish ✅", cbAddAPI)),
		menu.Row(menu.Data("🔙 Orqaga", cbMainMenu)),
	)
	return menu
}

func adminPanelKeyboard() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(
			menu.Data("📊 Statistika", cbAdminStats),
			menu.Data("👥 Foydalanuvchilar", cbAdminUsers),
		),
		menu.Row(
			menu.Data("🔑 API kalitlar", cbAdminAPIUsers),
			menu.Data("📈 Faollik", cbAdminActivity),
		),
		menu.Row(
			menu.Data("🚫 Bloklash", cbAdminBlock),
			menu.Data("✅ Blokdan chiqarish", cbAdminUnblock),
		),
		menu.Row(menu.Data("👮 Adminlar", cbAdminList)),
		menu.Row(menu.Data("🔙 Orqaga", cbMainMenu)),
	)
	return menu
}

// deleteConfirmKeyboard asks before a credential is dropped
func deleteConfirmKeyboard() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(
			menu.Data("✅ Ha", cbConfirmDeleteAPI),
			menu.Data("❌ Yo'q", cbMainMenu),
		),
	)
	return menu
}

// contactAdminKeyboard links a blocked user to the operator
func contactAdminKeyboard(contactHandle string) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(menu.URL("👤 Admin bilan bog'lanish", "https://t.me/"+contactHandle)),
	)
	return menu
}

func backToMainKeyboard() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(menu.Data("🔙 Asosiy menyu", cbMainMenu)))
	return menu
}

// orderActionKeyboard offers confirm and cancel for one order
func orderActionKeyboard(orderID string) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(
			menu.Data("✅ Tasdiqlash", cbOrderConfirm, orderID),
			menu.Data("❌ Bekor qilish", cbOrderCancel, orderID),
		),
		menu.Row(menu.Data("🔙 Orqaga", cbFBSOrders)),
	)
	return menu
}
