package handler

// User-facing messages. The product surface is Russian-language; these
// strings are part of the API contract and must not drift.
const (
	errFieldsRequired        = "Все поля обязательны"
	errEmailInvalid          = "Некорректный email"
	errPasswordTooShort      = "Пароль должен быть минимум 6 символов"
	errEmailTaken            = "Пользователь с таким email уже существует"
	errEmailPasswordRequired = "Email и пароль обязательны"
	errInvalidCredentials    = "Неверный email или пароль"
	errBadRequest            = "Некорректный запрос"
	errInternalServer        = "Внутренняя ошибка сервера"
)
