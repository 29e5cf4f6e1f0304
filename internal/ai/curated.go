package ai

import "strings"

// curatedLabels are pre-translated labels for icon names common enough
// that generation would be wasted on them. Keys are the lowercase base
// icon names derived from component tags.
var curatedLabels = map[string]map[string]string{
	"en": {
		"menu":          "Menu",
		"close":         "Close",
		"search":        "Search",
		"settings":      "Settings",
		"home":          "Home",
		"user":          "User account",
		"profile":       "Profile",
		"cart":          "Shopping cart",
		"shopping cart": "Shopping cart",
		"trash":         "Delete",
		"delete":        "Delete",
		"edit":          "Edit",
		"pencil":        "Edit",
		"plus":          "Add",
		"add":           "Add",
		"minus":         "Remove",
		"arrow left":    "Go back",
		"arrow right":   "Go forward",
		"chevron left":  "Previous",
		"chevron right": "Next",
		"heart":         "Favorite",
		"star":          "Rate",
		"share":         "Share",
		"download":      "Download",
		"upload":        "Upload",
		"bell":          "Notifications",
		"mail":          "Email",
		"envelope":      "Email",
		"phone":         "Phone",
		"calendar":      "Calendar",
		"info":          "Information",
		"question":      "Help",
		"external link": "Open in new tab",
		"copy":          "Copy",
		"check":         "Confirm",
		"play":          "Play",
		"pause":         "Pause",
		"sun":           "Switch to light mode",
		"moon":          "Switch to dark mode",
		"github":        "GitHub",
		"twitter":       "Twitter",
		"facebook":      "Facebook",
		"instagram":     "Instagram",
		"linkedin":      "LinkedIn",
		"youtube":       "YouTube",
	},
	"pl": {
		"menu":          "Menu",
		"close":         "Zamknij",
		"search":        "Szukaj",
		"settings":      "Ustawienia",
		"home":          "Strona główna",
		"user":          "Konto użytkownika",
		"profile":       "Profil",
		"cart":          "Koszyk",
		"shopping cart": "Koszyk",
		"trash":         "Usuń",
		"delete":        "Usuń",
		"edit":          "Edytuj",
		"pencil":        "Edytuj",
		"plus":          "Dodaj",
		"add":           "Dodaj",
		"minus":         "Usuń",
		"arrow left":    "Wstecz",
		"arrow right":   "Dalej",
		"chevron left":  "Poprzedni",
		"chevron right": "Następny",
		"heart":         "Ulubione",
		"star":          "Oceń",
		"share":         "Udostępnij",
		"download":      "Pobierz",
		"upload":        "Prześlij",
		"bell":          "Powiadomienia",
		"mail":          "E-mail",
		"envelope":      "E-mail",
		"phone":         "Telefon",
		"calendar":      "Kalendarz",
		"info":          "Informacje",
		"question":      "Pomoc",
		"copy":          "Kopiuj",
		"check":         "Potwierdź",
		"play":          "Odtwórz",
		"pause":         "Pauza",
	},
	"es": {
		"menu":          "Menú",
		"close":         "Cerrar",
		"search":        "Buscar",
		"settings":      "Configuración",
		"home":          "Inicio",
		"user":          "Cuenta de usuario",
		"profile":       "Perfil",
		"cart":          "Carrito",
		"shopping cart": "Carrito",
		"trash":         "Eliminar",
		"delete":        "Eliminar",
		"edit":          "Editar",
		"pencil":        "Editar",
		"plus":          "Añadir",
		"add":           "Añadir",
		"minus":         "Quitar",
		"arrow left":    "Volver",
		"arrow right":   "Avanzar",
		"chevron left":  "Anterior",
		"chevron right": "Siguiente",
		"heart":         "Favorito",
		"star":          "Valorar",
		"share":         "Compartir",
		"download":      "Descargar",
		"upload":        "Subir",
		"bell":          "Notificaciones",
		"mail":          "Correo",
		"envelope":      "Correo",
		"phone":         "Teléfono",
		"calendar":      "Calendario",
		"info":          "Información",
		"question":      "Ayuda",
		"copy":          "Copiar",
		"check":         "Confirmar",
		"play":          "Reproducir",
		"pause":         "Pausa",
	},
	"de": {
		"menu":          "Menü",
		"close":         "Schließen",
		"search":        "Suchen",
		"settings":      "Einstellungen",
		"home":          "Startseite",
		"user":          "Benutzerkonto",
		"profile":       "Profil",
		"cart":          "Warenkorb",
		"shopping cart": "Warenkorb",
		"trash":         "Löschen",
		"delete":        "Löschen",
		"edit":          "Bearbeiten",
		"pencil":        "Bearbeiten",
		"plus":          "Hinzufügen",
		"add":           "Hinzufügen",
		"minus":         "Entfernen",
		"arrow left":    "Zurück",
		"arrow right":   "Weiter",
		"chevron left":  "Vorherige",
		"chevron right": "Nächste",
		"heart":         "Favorit",
		"star":          "Bewerten",
		"share":         "Teilen",
		"download":      "Herunterladen",
		"upload":        "Hochladen",
		"bell":          "Benachrichtigungen",
		"mail":          "E-Mail",
		"envelope":      "E-Mail",
		"phone":         "Telefon",
		"calendar":      "Kalender",
		"info":          "Informationen",
		"question":      "Hilfe",
		"copy":          "Kopieren",
		"check":         "Bestätigen",
		"play":          "Abspielen",
		"pause":         "Pause",
	},
	"fr": {
		"menu":          "Menu",
		"close":         "Fermer",
		"search":        "Rechercher",
		"settings":      "Paramètres",
		"home":          "Accueil",
		"user":          "Compte utilisateur",
		"profile":       "Profil",
		"cart":          "Panier",
		"shopping cart": "Panier",
		"trash":         "Supprimer",
		"delete":        "Supprimer",
		"edit":          "Modifier",
		"pencil":        "Modifier",
		"plus":          "Ajouter",
		"add":           "Ajouter",
		"minus":         "Retirer",
		"arrow left":    "Retour",
		"arrow right":   "Suivant",
		"chevron left":  "Précédent",
		"chevron right": "Suivant",
		"heart":         "Favori",
		"star":          "Noter",
		"share":         "Partager",
		"download":      "Télécharger",
		"upload":        "Téléverser",
		"bell":          "Notifications",
		"mail":          "E-mail",
		"envelope":      "E-mail",
		"phone":         "Téléphone",
		"calendar":      "Calendrier",
		"info":          "Informations",
		"question":      "Aide",
		"copy":          "Copier",
		"check":         "Confirmer",
		"play":          "Lire",
		"pause":         "Pause",
	},
}

// CuratedLabel returns the pre-translated label for an icon base name,
// if the locale's table has one. Locale regions fall back to their
// language ("pl-PL" uses "pl").
func CuratedLabel(iconName, locale string) (string, bool) {
	if iconName == "" {
		return "", false
	}
	lang, _, _ := strings.Cut(strings.ToLower(locale), "-")
	table, ok := curatedLabels[lang]
	if !ok {
		return "", false
	}
	label, ok := table[strings.ToLower(iconName)]
	return label, ok
}
