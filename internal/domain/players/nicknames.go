package players

// nicknames expands common short first names to the spelling slate files use.
// Keys and values are lowercased; applied only to the first token of a key.
var nicknames = map[string]string{
	"alex":    "alexander",
	"cam":     "cameron",
	"dee":     "deandre",
	"greg":    "gregory",
	"herb":    "herbert",
	"ish":     "ishmael",
	"jeff":    "jeffrey",
	"joe":     "joseph",
	"josh":    "joshua",
	"kenny":   "kenneth",
	"matt":    "matthew",
	"mike":    "michael",
	"moe":     "maurice",
	"nic":     "nicolas",
	"nick":    "nicolas",
	"pat":     "patrick",
	"rob":     "robert",
	"ron":     "ronald",
	"steph":   "stephen",
	"steve":   "steven",
	"ty":      "tyrese",
	"vince":   "vincent",
	"will":    "william",
	"zach":    "zachary",
}
