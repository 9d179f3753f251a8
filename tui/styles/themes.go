package styles

import "github.com/charmbracelet/lipgloss"

// base16 builds a Theme from its sixteen hex colours, base00 first.
func base16(name string, hex ...string) Theme {
	c := make([]lipgloss.Color, 16)
	for i := range c {
		if i < len(hex) {
			c[i] = lipgloss.Color("#" + hex[i])
		}
	}
	return Theme{
		Name:   name,
		Base00: c[0], Base01: c[1], Base02: c[2], Base03: c[3],
		Base04: c[4], Base05: c[5], Base06: c[6], Base07: c[7],
		Base08: c[8], Base09: c[9], Base0A: c[10], Base0B: c[11],
		Base0C: c[12], Base0D: c[13], Base0E: c[14], Base0F: c[15],
	}
}

// Themes maps a slug to its Base16 scheme.
var Themes = map[string]Theme{
	"solarized-dark": base16("Solarized Dark",
		"002b36", "073642", "586e75", "657b83", "839496", "93a1a1", "eee8d5", "fdf6e3",
		"dc322f", "cb4b16", "b58900", "859900", "2aa198", "268bd2", "6c71c4", "d33682"),
	"solarized-light": base16("Solarized Light",
		"fdf6e3", "eee8d5", "93a1a1", "839496", "657b83", "586e75", "073642", "002b36",
		"dc322f", "cb4b16", "b58900", "859900", "2aa198", "268bd2", "6c71c4", "d33682"),
	"dracula": base16("Dracula",
		"282936", "3a3c4e", "4d4f68", "626483", "62d6e8", "e9e9f4", "f1f2f8", "f7f7fb",
		"ea51b2", "b45bcf", "ebff87", "00f769", "a1efe4", "62d6e8", "b45bcf", "00f769"),
	"gruvbox-dark": base16("Gruvbox Dark",
		"282828", "3c3836", "504945", "665c54", "bdae93", "d5c4a1", "ebdbb2", "fbf1c7",
		"fb4934", "fe8019", "fabd2f", "b8bb26", "8ec07c", "83a598", "d3869b", "d65d0e"),
	"gruvbox-light": base16("Gruvbox Light",
		"fbf1c7", "ebdbb2", "d5c4a1", "bdae93", "665c54", "504945", "3c3836", "282828",
		"9d0006", "af3a03", "b57614", "79740e", "427b58", "076678", "8f3f71", "d65d0e"),
	"nord": base16("Nord",
		"2e3440", "3b4252", "434c5e", "4c566a", "d8dee9", "e5e9f0", "eceff4", "8fbcbb",
		"bf616a", "d08770", "ebcb8b", "a3be8c", "88c0d0", "81a1c1", "b48ead", "5e81ac"),
	"monokai": base16("Monokai",
		"272822", "383830", "49483e", "75715e", "a59f85", "f8f8f2", "f5f4f1", "f9f8f5",
		"f92672", "fd971f", "f4bf75", "a6e22e", "a1efe4", "66d9ef", "ae81ff", "cc6633"),
	"onedark": base16("OneDark",
		"282c34", "353b45", "3e4451", "545862", "565c64", "abb2bf", "b6bdca", "c8ccd4",
		"e06c75", "d19a66", "e5c07b", "98c379", "56b6c2", "61afef", "c678dd", "be5046"),
	"tomorrow": base16("Tomorrow",
		"ffffff", "e0e0e0", "d6d6d6", "8e908c", "969896", "4d4d4c", "282a2e", "1d1f21",
		"c82829", "f5871f", "eab700", "718c00", "3e999f", "4271ae", "8959a8", "a3685a"),
	"tomorrow-night": base16("Tomorrow Night",
		"1d1f21", "282a2e", "373b41", "969896", "b4b7b4", "c5c8c6", "e0e0e0", "ffffff",
		"cc6666", "de935f", "f0c674", "b5bd68", "8abeb7", "81a2be", "b294bb", "a3685a"),
	"ocean": base16("Ocean",
		"2b303b", "343d46", "4f5b66", "65737e", "a7adba", "c0c5ce", "dfe1e8", "eff1f5",
		"bf616a", "d08770", "ebcb8b", "a3be8c", "96b5b4", "8fa1b3", "b48ead", "ab7967"),
	"eighties": base16("Eighties",
		"2d2d2d", "393939", "515151", "747369", "a09f93", "d3d0c8", "e8e6df", "f2f0ec",
		"f2777a", "f99157", "ffcc66", "99cc99", "66cccc", "6699cc", "cc99cc", "d27b53"),
	"mocha": base16("Mocha",
		"3b3228", "534636", "645240", "7e705a", "b8afad", "d0c8c6", "e9e1dd", "f5eeeb",
		"cb6077", "d28b71", "f4bc87", "beb55b", "7bbda4", "8ab3b5", "a89bb9", "bb9584"),
	"material": base16("Material",
		"263238", "2e3c43", "314549", "546e7a", "b2ccd6", "eeffff", "eeffff", "ffffff",
		"f07178", "f78c6c", "ffcb6b", "c3e88d", "89ddff", "82aaff", "c792ea", "ff5370"),
	"material-darker": base16("Material Darker",
		"212121", "303030", "353535", "4a4a4a", "b2ccd6", "eeffff", "eeffff", "ffffff",
		"f07178", "f78c6c", "ffcb6b", "c3e88d", "89ddff", "82aaff", "c792ea", "ff5370"),
	"atelier-dune": base16("Atelier Dune",
		"20201d", "292824", "6e6b5e", "7d7a68", "999580", "a6a28c", "e8e4cf", "fefbec",
		"d73737", "b65611", "ae9513", "60ac39", "1fad83", "6684e1", "b854d4", "d43552"),
	"twilight": base16("Twilight",
		"1e1e1e", "323537", "464b50", "5f5a60", "838184", "a7a7a7", "c3c3c3", "ffffff",
		"cf6a4c", "cda869", "f9ee98", "8f9d6a", "afc4db", "7587a6", "9b859d", "9b703f"),
	"zenburn": base16("Zenburn",
		"383838", "404040", "606060", "6f6f6f", "808080", "dcdccc", "c0c0c0", "ffffff",
		"dca3a3", "dfaf8f", "e0cf9f", "5f7f5f", "93e0e3", "7cb8bb", "dc8cc3", "000000"),
	"catppuccin-mocha": base16("Catppuccin Mocha",
		"1e1e2e", "181825", "313244", "45475a", "585b70", "cdd6f4", "f5e0dc", "b4befe",
		"f38ba8", "fab387", "f9e2af", "a6e3a1", "94e2d5", "89b4fa", "cba6f7", "f2cdcd"),
	"tokyo-night": base16("Tokyo Night",
		"1a1b26", "16161e", "2f3549", "444b6a", "787c99", "a9b1d6", "cbccd1", "d5d6db",
		"c0caf5", "a9b1d6", "0db9d7", "9ece6a", "b4f9f8", "2ac3de", "bb9af7", "f7768e"),
	"rose-pine": base16("Rosé Pine",
		"191724", "1f1d2e", "26233a", "6e6a86", "908caa", "e0def4", "e0def4", "524f67",
		"eb6f92", "f6c177", "ebbcba", "31748f", "9ccfd8", "c4a7e7", "f6c177", "524f67"),
	"default-dark": base16("Default Dark",
		"181818", "282828", "383838", "585858", "b8b8b8", "d8d8d8", "e8e8e8", "f8f8f8",
		"ab4642", "dc9656", "f7ca88", "a1b56c", "86c1b9", "7cafc2", "ba8baf", "a16946"),
	"default-light": base16("Default Light",
		"f8f8f8", "e8e8e8", "d8d8d8", "b8b8b8", "585858", "383838", "282828", "181818",
		"ab4642", "dc9656", "f7ca88", "a1b56c", "86c1b9", "7cafc2", "ba8baf", "a16946"),
	"github": base16("GitHub",
		"ffffff", "f5f5f5", "c8c8fa", "969896", "e8e8e8", "333333", "ffffff", "ffffff",
		"ed6a43", "0086b3", "795da3", "183691", "183691", "795da3", "a71d5d", "333333"),
}
