package common

import "fmt"

func bannerVersion() string {
	version, err := GetVersion()
	if err != nil {
		return "unknown"
	}
	return version
}

// FileHeader returns the generated-file banner using the target language's
// line comment prefix. The banner carries no timestamp so repeated runs
// produce identical output.
func FileHeader(comment, lang string) string {
	return fmt.Sprintf("%s Code generated by tokenforge %s. DO NOT EDIT.\n%s %s design tokens.\n", comment, bannerVersion(), comment, lang)
}

// BlockHeader is FileHeader for languages with only block comments.
func BlockHeader(open, close, lang string) string {
	return fmt.Sprintf("%s Code generated by tokenforge %s. DO NOT EDIT.\n   %s design tokens. %s\n", open, bannerVersion(), lang, close)
}

// XMLHeader is the prolog and banner for XML resource files.
func XMLHeader() string {
	return fmt.Sprintf("<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<!-- Code generated by tokenforge %s. DO NOT EDIT. -->\n", bannerVersion())
}
