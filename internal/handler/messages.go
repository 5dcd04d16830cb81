package handler

// User-facing texts, Uzbek, Telegram HTML parse mode.
const (
	msgWelcome = `🛍 <b>Uzum business botiga xush kelibsiz!</b>

Bu bot orqali siz o'zingizning biznes ma'lumotlaringizni ko'rishingiz mumkin.

Boshlash uchun 🔄 API kiritish ✅ tugmasini bosing!`

	msgHelp = `📋 <b>Bot buyruqlari:</b>

/start - Botni qayta ishga tushirish
/api - API kalitini boshqarish
/menu - Asosiy menyu
/status - API holati
/help - Bu yordam

<i>API kalitingizni kiritganingizdan so'ng barcha imkoniyatlardan foydalanishingiz mumkin.</i>`

	msgAPIPrompt = "🔑 API kalitingizni yuboring:\n\nAPI kalitni olish yuqoridagi rasmda ketma ket ko'rsatilgan shunday holatda yuboring iltimos e'tiborli bo'ling!"

	msgAPISaved = "✅ <b>API kalit muvaffaqiyatli saqlandi!</b>\n\nEndi barcha imkoniyatlardan foydalanishingiz mumkin."

	msgAPIInvalid = "❌ <b>API kalit noto'g'ri yoki ishlamayapti!</b>\n\nIltimos, to'g'ri API kalitni kiriting."

	msgAPITesting = "🔄 <b>API kalit tekshirilmoqda...</b>"

	msgAPIDeleted = "🗑 <b>API kalit o'chirildi</b>\n\nYangi API kalit kiritish uchun /api buyrug'ini bosing."

	msgDeleteConfirm = "🗑 <b>API kalitni o'chirishni xohlaysizmi?</b>\n\n<i>Bu amalni qaytarib bo'lmaydi!</i>"

	msgNoAPI = "⚠️ <b>API kalit kiritilmagan!</b>\n\nIltimos, avval API kalitingizni kiriting."

	msgMainMenu = "📊 <b>Asosiy menyu</b>\n\nKerakli bo'limni tanlang:"

	msgAPIConnected = "✅ <b>API ulangan</b>\n\nBarcha imkoniyatlar mavjud."

	msgAPIDisconnected = "❌ <b>API ulanmagan</b>\n\nAPI kalitingizni tekshiring."

	msgError = "❌ <b>Xatolik yuz berdi!</b>\n\nIltimos, qaytadan urinib ko'ring."

	msgLoading = "📥 <b>Ma'lumotlar yuklanmoqda...</b>"

	msgNoData = "📭 <b>Ma'lumotlar topilmadi</b>"

	msgBlocked = "🚫 <b>Siz bloklangansiz!</b>\n\nAdministrator bilan bog'laning:"

	msgCancelled = "↩️ Amal bekor qilindi."

	msgNotAdmin = "⛔️ Bu buyruq faqat administratorlar uchun."

	msgSearchPrompt = "🔍 Qidiruv so'zini yuboring:"

	msgPricePrompt = "💰 Narxni yangilash uchun <code>SKU:NARX</code> ko'rinishida yuboring.\n\nMasalan: <code>123456:150000</code>"

	msgPriceFormat = "❌ Noto'g'ri format. <code>SKU:NARX</code> ko'rinishida yuboring, narx musbat butun son bo'lsin."

	msgPriceUpdated = "✅ Narx muvaffaqiyatli yangilandi!"

	msgPriceRejected = "❌ Narxni yangilab bo'lmadi. Keyinroq urinib ko'ring."

	msgBlockPrompt = "🚫 Bloklash uchun foydalanuvchi ID sini yuboring:"

	msgUnblockPrompt = "✅ Blokdan chiqarish uchun foydalanuvchi ID sini yuboring:"

	msgUserIDInvalid = "❌ Foydalanuvchi ID raqam bo'lishi kerak."

	msgBroadcastUsage = "📢 Xabar yuborish: <code>/broadcast matn</code>"

	msgGrantUsage = "➕ Admin qo'shish: <code>/grant ID</code>"

	msgRevokeUsage = "➖ Adminni olib tashlash: <code>/revoke ID</code>"
)
