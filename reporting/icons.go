/*
Velociraptor - Dig Deeper
Copyright (C) 2019-2025 Rapid7 Inc.

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published
by the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package reporting

import (
	"strings"

	"www.velocidex.com/golang/artifact_report/constants"
)

// Icons are names from the feathericons collection
// (https://feathericons.com). The sidebar renders them with
// <span data-feather="...">.

type MatchType int

const (
	MatchExact MatchType = iota
	MatchContains
)

func (self MatchType) matches(pattern, value string) bool {
	switch self {
	case MatchContains:
		return strings.Contains(value, pattern)
	default:
		return value == pattern
	}
}

type ArtifactRule struct {
	Match    MatchType
	Artifact string
	Icon     string
}

// A CategoryRule maps a category to an icon. Artifact overrides are
// tried in order and the first one matching wins. If none match the
// Default is used, or the global default if the rule has none.
type CategoryRule struct {
	Match     MatchType
	Category  string
	Default   string
	Overrides []ArtifactRule
}

func exact(artifact, icon string) ArtifactRule {
	return ArtifactRule{Match: MatchExact, Artifact: artifact, Icon: icon}
}

func contains(artifact, icon string) ArtifactRule {
	return ArtifactRule{Match: MatchContains, Artifact: artifact, Icon: icon}
}

func category(name, icon string, overrides ...ArtifactRule) CategoryRule {
	return CategoryRule{
		Match: MatchExact, Category: name,
		Default: icon, Overrides: overrides}
}

// All names are upper case. Please keep the list sorted by category
// except where a rule must be tried before another.
var iconRules = []CategoryRule{
	{Match: MatchContains, Category: "ACCOUNT", Default: "user",
		Overrides: []ArtifactRule{contains("AUTH", "key")}},

	category("ADDRESS BOOK", "book-open"),
	category("AGGREGATE DICTIONARY", "book"),
	category("AIRTAGS", "map-pin"),
	category("ALARMS", "clock"),
	category("ALLTRAILS", "",
		exact("ALLTRAILS - TRAIL DETAILS", "map"),
		exact("ALLTRAILS - USER INFO", "user")),
	category("APP CONDUIT", "activity"),
	category("APP PERMISSIONS", "key"),
	category("APP UPDATES", "codepen"),
	category("APPLE MAIL", "mail"),
	category("APPLE PODCASTS", "play-circle"),
	category("APPLE WALLET", "credit-card",
		exact("TRANSACTIONS", "dollar-sign"),
		exact("CARDS", "credit-card"),
		exact("PASSES", "send")),
	category("APPLICATIONS", "grid"),
	category("BIOME", "eye"),
	category("BIOME APP INSTALL", "eye"),
	category("BIOME BACKLIGHT", "eye"),
	category("BIOME BATTERY PERC", "eye"),
	category("BIOME BLUETOOTH", "eye"),
	category("BIOME CARPLAY CONN", "eye"),
	category("BIOME DEVICE PLUG", "eye"),
	category("BIOME HARDWARE", "eye"),
	category("BIOME IN FOCUS", "eye"),
	category("BIOME INTENTS", "eye"),
	category("BIOME LOCATION ACT", "eye"),
	category("BIOME NOTES", "eye"),
	category("BIOME NOTIFICATIONS PUB", "eye"),
	category("BIOME NOW PLAYING", "eye"),
	category("BIOME SAFARI", "eye"),
	category("BIOME SYNC", "smartphone"),
	category("BIOME TEXT INPUT", "eye"),
	category("BIOME USER ACT META", "eye"),
	category("BIOME WIFI", "eye"),
	category("BITTORRENT", "share"),
	category("BLUETOOTH", "bluetooth"),
	category("BUMBLE", "",
		exact("BUMBLE - MESSAGES", "message-circle"),
		exact("BUMBLE - ACCOUNT DETAILS", "user")),
	category("CACHE DATA", "box"),
	category("CALENDAR", "calendar"),
	category("CALL HISTORY", "",
		exact("CALL HISTORY", "phone-call"),
		exact("VOICEMAIL", "mic"),
		exact("DELETED VOICEMAIL", "mic-off")),
	category("CARPLAY", "package"),
	category("CASH APP", "credit-card"),
	category("CELLULAR WIRELESS", "bar-chart"),
	category("CHROMIUM", "chrome",
		contains("AUTOFILL", "edit-3"),
		contains("BOOKMARKS", "bookmark"),
		contains("DOWNLOADS", "download"),
		contains("LOGIN", "log-in"),
		contains("MEDIA HISTORY", "video"),
		contains("NETWORK ACTION PREDICTOR", "type"),
		contains("OFFLINE PAGES", "cloud-off"),
		contains("SEARCH TERMS", "search"),
		contains("TOP SITES", "list"),
		contains("WEB VISITS", "globe")),
	category("CLOUDKIT", "",
		exact("PARTICIPANTS", "user"),
		exact("NOTE SHARING", "share-2")),
	category("CONNECTED TO", "zap"),
	category("CONTROL CENTER", "",
		exact("CONTROL CENTER - DISABLED CONTROLS", "x-square"),
		exact("CONTROL CENTER - ACTIVE CONTROLS", "sliders"),
		exact("CONTROL CENTER - USER TOGGLED CONTROLS", "check-square")),
	category("CORE ACCESSORIES", "",
		exact("USER EVENT AGENT", "activity"),
		exact("ACCESSORYD", "zap")),
	category("COREDUET", "",
		exact("AIRPLANE MODE", "pause"),
		exact("LOCK STATE", "lock"),
		exact("PLUGGED IN", "battery-charging")),
	category("DAHUA TECHNOLOGY (DMSS)", "",
		contains("PIN", "unlock"),
		contains("CHANNELS", "film"),
		contains("INFO", "settings"),
		contains("USER CREATED MEDIA", "video"),
		contains("SENSORS", "smartphone"),
		contains("DEVICES", "tablet"),
		contains("NOTIFICATIONS", "bell")),
	category("DATA USAGE", "wifi"),
	category("DEVICE DATA", "file"),
	category("DEVICE INFO", "info",
		exact("BUILD INFO", "terminal"),
		exact("IOS SYSTEM VERSION", "git-commit"),
		exact("PARTNER SETTINGS", "settings"),
		contains("SETTINGS_SECURE_", "settings")),
	category("DHCP", "settings"),
	category("DISCORD", "",
		exact("DISCORD MESSAGES", "message-square"),
		exact("DISCORD ACCOUNT", "user"),
		exact("DISCORD MANIFEST", "file-text")),
	category("DRAFT NATIVE MESSAGES", "message-circle"),
	category("FACEBOOK MESSENGER", "facebook"),
	category("FILES APP", "file-text"),
	category("GEOLOCATION", "map-pin",
		exact("APPLICATIONS", "grid"),
		exact("MAP TILE CACHE", "map"),
		exact("MAPSSYNC", "map"),
		exact("PD PLACE CACHE", "map-pin")),
	category("GMAIL", "",
		exact("GMAIL - LABEL DETAILS", "mail"),
		exact("GMAIL - OFFLINE SEARCH", "search")),
	category("GOOGLE CHAT", "message-square"),
	category("GOOGLE DUO", "",
		exact("GOOGLE DUO - CALL HISTORY", "phone-call"),
		exact("GOOGLE DUO - CONTACTS", "user"),
		exact("GOOGLE DUO - CLIPS", "video")),
	category("HEALTH", "heart",
		exact("HEALTH - ACHIEVEMENTS", "star"),
		exact("HEALTH - HEADPHONE AUDIO LEVELS", "headphones"),
		exact("HEALTH - HEART RATE", "activity"),
		exact("HEALTH - RESTING HEART RATE", "activity"),
		exact("HEALTH - STEPS", "activity"),
		exact("HEALTH - WORKOUTS", "activity")),
	category("HIKVISION", "",
		contains("CCTV CHANNELS", "film"),
		contains("CCTV ACTIVITY", "activity"),
		contains("CCTV INFO", "settings"),
		contains("USER CREATED MEDIA", "video")),
	category("ICLOUD QUICK LOOK", "file"),
	category("ICLOUD RETURNS", "cloud"),
	category("ICLOUD SHARED ALBUMS", "cloud"),
	category("IDENTIFIERS", "file"),
	category("IMO HD CHAT", "",
		exact("IMO HD CHAT - MESSAGES", "message-circle"),
		exact("IMO HD CHAT - CONTACTS", "user")),
	category("INSTAGRAM", "",
		exact("INSTAGRAM THREADS", "message-square"),
		exact("INSTAGRAM THREADS CALLS", "phone")),
	category("INSTALLED APPS", "package"),
	category("INTENTS", "command"),
	category("INTERACTIONC", "",
		exact("CONTACTS", "user"),
		exact("ATTACHMENTS", "paperclip")),
	category("IOS ATXDATASTORE", "database"),
	category("IOS BUILD", "git-commit"),
	category("IOS BUILD (ITUNES BACKUP)", "git-commit"),
	category("IOS SCREENS", "maximize"),
	category("KEYBOARD", "",
		exact("KEYBOARD DYNAMIC LEXICON", "type"),
		exact("KEYBOARD APPLICATION USAGE", "type")),
	category("KIK", "",
		exact("KIK MESSAGES", "message-square"),
		exact("KIK GROUP ADMINISTRATORS", "user-plus"),
		exact("KIK LOCAL ACCOUNT", "user-check"),
		exact("KIK USERS", "user"),
		exact("KIK USERS IN GROUPS", "user"),
		exact("KIK MEDIA METADATA", "file-plus"),
		exact("KIK PENDING UPLOADS", "upload")),
	category("KNOWLEDGEC", "activity",
		exact("KNOWLEDGEC DEVICE LOCKED", "lock"),
		exact("KNOWLEDGEC PLUGGED IN", "battery-charging"),
		exact("KNOWLEDGEC BATTERY LEVEL", "battery")),
	category("LOCATION SERVICES CONFIGURATIONS", "settings"),
	category("LOCATIONS", "map-pin",
		exact("APPLE MAPS SEARCH HISTORY", "search")),
	category("MEDIA LIBRARY", "play-circle"),
	category("MEDIA METADATA", "file-plus"),
	category("MEDICAL ID", "thermometer"),
	category("METAMASK", "dollar-sign",
		contains("BROWSER", "globe"),
		contains("CONTACTS", "users")),
	category("MICROSOFT TEAMS", "",
		exact("TEAMS MESSAGES", "message-square"),
		exact("TEAMS CONTACT", "users"),
		exact("TEAMS USER", "user"),
		exact("TEAMS CALL LOGS", "phone"),
		exact("TEAMS SHARED LOCATIONS", "map-pin")),
	category("MICROSOFT TEAMS - LOGS", "",
		exact("TEAMS LOCATIONS", "map-pin"),
		exact("TEAMS MOTION", "move"),
		exact("TEAMS STATE CHANGE", "truck"),
		exact("TEAMS POWER LOG", "battery-charging"),
		exact("TEAMS TIMEZONE", "clock")),
	category("MOBILE ACTIVATION LOGS", "clipboard"),
	category("MOBILE BACKUP", "save"),
	category("MOBILE CONTAINER MANAGER", "save"),
	category("MOBILE INSTALLATION LOGS", "clipboard"),
	category("MOBILE SOFTWARE UPDATE", "refresh-cw"),
	category("NETWORK USAGE", "",
		contains("APP DATA", "activity"),
		contains("CONNECTIONS", "bar-chart")),
	category("NOTES", "file-text"),
	category("NOTIFICATIONS", "bell"),
	category("OFFLINE PAGES", "cloud-off"),
	category("PHOTOS", "image",
		exact("MIGRATIONS", "chevrons-up")),
	category("POWERLOG", "power"),
	category("POWERLOG BACKUPS", "power"),
	category("PREFERENCES PLIST", "file"),
	category("PROTON MAIL", "mail"),
	category("RECENT ACTIVITY", "activity"),
	category("REMINDERS", "list"),
	category("ROUTINED", "map"),
	category("SAFARI BROWSER", "compass"),
	category("SCREENTIME", "monitor"),
	category("SCRIPT LOGS", "archive"),
	category("SECRET CALCULATOR PHOTO ALBUM", "image"),
	category("SIM INFO", "info"),
	category("SLACK", "",
		exact("SLACK MESSAGES", "message-square"),
		exact("SLACK USER DATA", "user"),
		exact("SLACK ATTACHMENTS", "paperclip"),
		exact("SLACK WORKSPACE DATA", "slack"),
		exact("SLACK TEAM DATA", "slack"),
		exact("SLACK CHANNEL DATA", "slack")),
	category("SMS & IMESSAGE", "message-square"),
	category("SQLITE JOURNALING", "book-open"),
	category("TELEGRAM", "message-square"),
	category("TEXT INPUT MESSAGES", "message-square"),
	category("TIKTOK", "",
		exact("TIKTOK MESSAGES", "message-square"),
		exact("TIKTOK CONTACTS", "user"),
		exact("TIKTOK SEARCH", "search")),
	category("USER DICTIONARY", "book"),
	category("VENMO", "dollar-sign"),
	category("VIBER", "",
		exact("VIBER - SETTINGS", "settings"),
		exact("VIBER - CONTACTS", "users"),
		exact("VIBER - CHATS", "message-square"),
		exact("VIBER - CALL REMNANTS", "phone-call")),
	category("VIPPS", "dollar-sign",
		exact("VIPPS CONTACTS", "users")),
	category("VOICE-RECORDINGS", "mic"),
	category("VOICE-TRIGGERS", "mic"),
	category("WHATSAPP", "",
		exact("WHATSAPP - MESSAGES", "message-square"),
		exact("WHATSAPP - CONTACTS", "users")),
	category("WIFI CONNECTIONS", "wifi"),
	category("WIFI KNOWN NETWORKS", "wifi"),
}

// ResolveIcon returns the icon name for an artifact. Matching is case
// insensitive and the first category rule which matches decides the
// outcome. Unknown combinations get the default icon.
func ResolveIcon(category, artifact string) string {
	return resolveIconFromRules(iconRules, category, artifact)
}

func resolveIconFromRules(rules []CategoryRule, category, artifact string) string {
	category = strings.ToUpper(category)
	artifact = strings.ToUpper(artifact)

	for _, rule := range rules {
		if !rule.Match.matches(rule.Category, category) {
			continue
		}

		for _, override := range rule.Overrides {
			if override.Match.matches(override.Artifact, artifact) {
				return override.Icon
			}
		}

		if rule.Default != "" {
			return rule.Default
		}
		break
	}

	return constants.DEFAULT_ICON
}
