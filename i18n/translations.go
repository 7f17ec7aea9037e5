package i18n

// translations holds the bundled UI strings per language. An unknown key
// falls back to English and finally to the key itself.
var translations = map[Language]map[string]string{
	English: {
		"introducing":               "Introducing",
		"wifi_7_high_performance":   "WiFi 7 High Performance",
		"failed_to_load_categories": "Failed to load categories",
		"failed_to_load_products":   "Failed to load products",
		"purchase_success":          "Purchase successful",
		"cart_empty":                "Your cart is empty",
		"add_to_cart":               "Add to cart",
		"search_products":           "Search products",
	},
	Latvian: {
		"introducing":               "Iepazīstinām",
		"wifi_7_high_performance":   "WiFi 7 augsta veiktspēja",
		"failed_to_load_categories": "Neizdevās ielādēt kategorijas",
		"failed_to_load_products":   "Neizdevās ielādēt produktus",
		"purchase_success":          "Pirkums veiksmīgs",
		"cart_empty":                "Jūsu grozs ir tukšs",
		"add_to_cart":               "Pievienot grozam",
		"search_products":           "Meklēt produktus",
	},
	Russian: {
		"introducing":               "Представляем",
		"wifi_7_high_performance":   "WiFi 7 высокая производительность",
		"failed_to_load_categories": "Не удалось загрузить категории",
		"failed_to_load_products":   "Не удалось загрузить продукты",
		"purchase_success":          "Покупка завершена успешно",
		"cart_empty":                "Ваша корзина пуста",
		"add_to_cart":               "Добавить в корзину",
		"search_products":           "Поиск продуктов",
	},
}
