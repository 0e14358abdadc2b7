// Package language defines the canonical set of languages understood by every
// translation provider adapter.
package language

import "strings"

// Code is one canonical language. The zero value, Undetermined, stands for
// "not specified" and asks providers to auto-detect when used as a source.
type Code uint16

const (
	Undetermined Code = iota
	Chinese
	ChineseTraditional
	ClassicalChinese
	Cantonese
	English
	Japanese
	Korean
	French
	CanadianFrench
	Spanish
	Portuguese
	BrazilianPortuguese
	German
	Italian
	Russian
	Arabic
	Thai
	Vietnamese
	Indonesian
	Malay
	Dutch
	Polish
	Turkish
	Greek
	Czech
	Swedish
	Danish
	Finnish
	Hungarian
	Romanian
	Bulgarian
	Estonian
	Slovenian
	Slovak
	Ukrainian
	Hindi
	Hebrew
	Persian
	Norwegian
	Serbian
	Croatian
	Lithuanian
	Latvian
	Filipino
	Bengali
	Urdu
	Tamil
	Swahili
	Latin
	Welsh
	Irish
	Icelandic
	Afrikaans
	Acholi
	Akan
	Albanian
	AlgerianArabic
	Amharic
	AncientGreek
	Aragonese
	Armenian
	Assamese
	Asturian
	Aymara
	Azerbaijani
	Baluchi
	Bashkir
	Basque
	Belarusian
	Bemba
	Berber
	Bhojpuri
	Bislama
	Blin
	Bosnian
	Breton
	Burmese
	Catalan
	Cebuano
	Cherokee
	Chichewa
	Chuvash
	Cornish
	Corsican
	Cree
	CrimeanTatar
	Dhivehi
	Esperanto
	Faroese
	Fijian
	Friulian
	Fulah
	Galician
	Ganda
	Georgian
	Greenlandic
	Guarani
	Gujarati
	HaitianCreole
	Hakka
	Hausa
	Hawaiian
	Hiligaynon
	Hmong
	Hupa
	Ido
	Igbo
	Ingush
	Interlingua
	Inuktitut
	Javanese
	Kabyle
	Kannada
	Kanuri
	Kashmiri
	Kashubian
	Kazakh
	Khmer
	Kinyarwanda
	Klingon
	Kongo
	Konkani
	Kurdish
	Kyrgyz
	Lao
	Latgalian
	Limburgish
	Lingala
	Lojban
	LowGerman
	LowerSorbian
	Luxembourgish
	Macedonian
	Maithili
	Malagasy
	Malayalam
	Maltese
	Manx
	Maori
	Marathi
	Marshallese
	MauritianCreole
	MiddleFrench
	Mongolian
	Montenegrin
	NKo
	Neapolitan
	Nepali
	NorthernSami
	NorthernSotho
	Occitan
	Ojibwa
	OldEnglish
	Oriya
	Oromo
	Ossetian
	Pampanga
	Papiamento
	Pashto
	Punjabi
	QueretaroOtomi
	Quechua
	Romansh
	Rusyn
	Samoan
	Sanskrit
	Sardinian
	Scots
	ScottishGaelic
	SerboCroatian
	Shan
	Shona
	Silesian
	Sindhi
	Sinhala
	Somali
	Sorani
	SouthNdebele
	SouthernSotho
	Sundanese
	Syriac
	Tahitian
	Tajik
	Tatar
	Telugu
	Tetum
	Tigrinya
	Tongan
	Tsonga
	TunisianArabic
	Turkmen
	Twi
	UpperSorbian
	Uzbek
	Venda
	Walloon
	WesternFrisian
	Wolof
	Xhosa
	Yiddish
	Yoruba
	YucatecMaya
	Zaza
	Zulu

	codeCount
)

type codeInfo struct {
	tag  string
	name string
}

var codeInfos = [codeCount]codeInfo{
	Undetermined:        {tag: "und", name: "Undetermined"},
	Chinese:             {tag: "zh", name: "Chinese"},
	ChineseTraditional:  {tag: "zh-hant", name: "Chinese (Traditional)"},
	ClassicalChinese:    {tag: "lzh", name: "Classical Chinese"},
	Cantonese:           {tag: "yue", name: "Cantonese"},
	English:             {tag: "en", name: "English"},
	Japanese:            {tag: "ja", name: "Japanese"},
	Korean:              {tag: "ko", name: "Korean"},
	French:              {tag: "fr", name: "French"},
	CanadianFrench:      {tag: "fr-ca", name: "French (Canada)"},
	Spanish:             {tag: "es", name: "Spanish"},
	Portuguese:          {tag: "pt", name: "Portuguese"},
	BrazilianPortuguese: {tag: "pt-br", name: "Portuguese (Brazil)"},
	German:              {tag: "de", name: "German"},
	Italian:             {tag: "it", name: "Italian"},
	Russian:             {tag: "ru", name: "Russian"},
	Arabic:              {tag: "ar", name: "Arabic"},
	Thai:                {tag: "th", name: "Thai"},
	Vietnamese:          {tag: "vi", name: "Vietnamese"},
	Indonesian:          {tag: "id", name: "Indonesian"},
	Malay:               {tag: "ms", name: "Malay"},
	Dutch:               {tag: "nl", name: "Dutch"},
	Polish:              {tag: "pl", name: "Polish"},
	Turkish:             {tag: "tr", name: "Turkish"},
	Greek:               {tag: "el", name: "Greek"},
	Czech:               {tag: "cs", name: "Czech"},
	Swedish:             {tag: "sv", name: "Swedish"},
	Danish:              {tag: "da", name: "Danish"},
	Finnish:             {tag: "fi", name: "Finnish"},
	Hungarian:           {tag: "hu", name: "Hungarian"},
	Romanian:            {tag: "ro", name: "Romanian"},
	Bulgarian:           {tag: "bg", name: "Bulgarian"},
	Estonian:            {tag: "et", name: "Estonian"},
	Slovenian:           {tag: "sl", name: "Slovenian"},
	Slovak:              {tag: "sk", name: "Slovak"},
	Ukrainian:           {tag: "uk", name: "Ukrainian"},
	Hindi:               {tag: "hi", name: "Hindi"},
	Hebrew:              {tag: "he", name: "Hebrew"},
	Persian:             {tag: "fa", name: "Persian"},
	Norwegian:           {tag: "no", name: "Norwegian"},
	Serbian:             {tag: "sr", name: "Serbian"},
	Croatian:            {tag: "hr", name: "Croatian"},
	Lithuanian:          {tag: "lt", name: "Lithuanian"},
	Latvian:             {tag: "lv", name: "Latvian"},
	Filipino:            {tag: "fil", name: "Filipino"},
	Bengali:             {tag: "bn", name: "Bengali"},
	Urdu:                {tag: "ur", name: "Urdu"},
	Tamil:               {tag: "ta", name: "Tamil"},
	Swahili:             {tag: "sw", name: "Swahili"},
	Latin:               {tag: "la", name: "Latin"},
	Welsh:               {tag: "cy", name: "Welsh"},
	Irish:               {tag: "ga", name: "Irish"},
	Icelandic:           {tag: "is", name: "Icelandic"},
	Afrikaans:           {tag: "af", name: "Afrikaans"},
	Acholi:              {tag: "ach", name: "Acholi"},
	Akan:                {tag: "ak", name: "Akan"},
	Albanian:            {tag: "sq", name: "Albanian"},
	AlgerianArabic:      {tag: "arq", name: "Algerian Arabic"},
	Amharic:             {tag: "am", name: "Amharic"},
	AncientGreek:        {tag: "grc", name: "Ancient Greek"},
	Aragonese:           {tag: "an", name: "Aragonese"},
	Armenian:            {tag: "hy", name: "Armenian"},
	Assamese:            {tag: "as", name: "Assamese"},
	Asturian:            {tag: "ast", name: "Asturian"},
	Aymara:              {tag: "ay", name: "Aymara"},
	Azerbaijani:         {tag: "az", name: "Azerbaijani"},
	Baluchi:             {tag: "bal", name: "Baluchi"},
	Bashkir:             {tag: "ba", name: "Bashkir"},
	Basque:              {tag: "eu", name: "Basque"},
	Belarusian:          {tag: "be", name: "Belarusian"},
	Bemba:               {tag: "bem", name: "Bemba"},
	Berber:              {tag: "ber", name: "Berber"},
	Bhojpuri:            {tag: "bho", name: "Bhojpuri"},
	Bislama:             {tag: "bi", name: "Bislama"},
	Blin:                {tag: "byn", name: "Blin"},
	Bosnian:             {tag: "bs", name: "Bosnian"},
	Breton:              {tag: "br", name: "Breton"},
	Burmese:             {tag: "my", name: "Burmese"},
	Catalan:             {tag: "ca", name: "Catalan"},
	Cebuano:             {tag: "ceb", name: "Cebuano"},
	Cherokee:            {tag: "chr", name: "Cherokee"},
	Chichewa:            {tag: "ny", name: "Chichewa"},
	Chuvash:             {tag: "cv", name: "Chuvash"},
	Cornish:             {tag: "kw", name: "Cornish"},
	Corsican:            {tag: "co", name: "Corsican"},
	Cree:                {tag: "cr", name: "Cree"},
	CrimeanTatar:        {tag: "crh", name: "Crimean Tatar"},
	Dhivehi:             {tag: "dv", name: "Dhivehi"},
	Esperanto:           {tag: "eo", name: "Esperanto"},
	Faroese:             {tag: "fo", name: "Faroese"},
	Fijian:              {tag: "fj", name: "Fijian"},
	Friulian:            {tag: "fur", name: "Friulian"},
	Fulah:               {tag: "ff", name: "Fulah"},
	Galician:            {tag: "gl", name: "Galician"},
	Ganda:               {tag: "lg", name: "Ganda"},
	Georgian:            {tag: "ka", name: "Georgian"},
	Greenlandic:         {tag: "kl", name: "Greenlandic"},
	Guarani:             {tag: "gn", name: "Guarani"},
	Gujarati:            {tag: "gu", name: "Gujarati"},
	HaitianCreole:       {tag: "ht", name: "Haitian Creole"},
	Hakka:               {tag: "hak", name: "Hakka Chinese"},
	Hausa:               {tag: "ha", name: "Hausa"},
	Hawaiian:            {tag: "haw", name: "Hawaiian"},
	Hiligaynon:          {tag: "hil", name: "Hiligaynon"},
	Hmong:               {tag: "hmn", name: "Hmong"},
	Hupa:                {tag: "hup", name: "Hupa"},
	Ido:                 {tag: "io", name: "Ido"},
	Igbo:                {tag: "ig", name: "Igbo"},
	Ingush:              {tag: "inh", name: "Ingush"},
	Interlingua:         {tag: "ia", name: "Interlingua"},
	Inuktitut:           {tag: "iu", name: "Inuktitut"},
	Javanese:            {tag: "jv", name: "Javanese"},
	Kabyle:              {tag: "kab", name: "Kabyle"},
	Kannada:             {tag: "kn", name: "Kannada"},
	Kanuri:              {tag: "kr", name: "Kanuri"},
	Kashmiri:            {tag: "ks", name: "Kashmiri"},
	Kashubian:           {tag: "csb", name: "Kashubian"},
	Kazakh:              {tag: "kk", name: "Kazakh"},
	Khmer:               {tag: "km", name: "Khmer"},
	Kinyarwanda:         {tag: "rw", name: "Kinyarwanda"},
	Klingon:             {tag: "tlh", name: "Klingon"},
	Kongo:               {tag: "kg", name: "Kongo"},
	Konkani:             {tag: "kok", name: "Konkani"},
	Kurdish:             {tag: "ku", name: "Kurdish"},
	Kyrgyz:              {tag: "ky", name: "Kyrgyz"},
	Lao:                 {tag: "lo", name: "Lao"},
	Latgalian:           {tag: "ltg", name: "Latgalian"},
	Limburgish:          {tag: "li", name: "Limburgish"},
	Lingala:             {tag: "ln", name: "Lingala"},
	Lojban:              {tag: "jbo", name: "Lojban"},
	LowGerman:           {tag: "nds", name: "Low German"},
	LowerSorbian:        {tag: "dsb", name: "Lower Sorbian"},
	Luxembourgish:       {tag: "lb", name: "Luxembourgish"},
	Macedonian:          {tag: "mk", name: "Macedonian"},
	Maithili:            {tag: "mai", name: "Maithili"},
	Malagasy:            {tag: "mg", name: "Malagasy"},
	Malayalam:           {tag: "ml", name: "Malayalam"},
	Maltese:             {tag: "mt", name: "Maltese"},
	Manx:                {tag: "gv", name: "Manx"},
	Maori:               {tag: "mi", name: "Maori"},
	Marathi:             {tag: "mr", name: "Marathi"},
	Marshallese:         {tag: "mh", name: "Marshallese"},
	MauritianCreole:     {tag: "mfe", name: "Mauritian Creole"},
	MiddleFrench:        {tag: "frm", name: "Middle French"},
	Mongolian:           {tag: "mn", name: "Mongolian"},
	Montenegrin:         {tag: "cnr", name: "Montenegrin"},
	NKo:                 {tag: "nqo", name: "N'Ko"},
	Neapolitan:          {tag: "nap", name: "Neapolitan"},
	Nepali:              {tag: "ne", name: "Nepali"},
	NorthernSami:        {tag: "se", name: "Northern Sami"},
	NorthernSotho:       {tag: "nso", name: "Northern Sotho"},
	Occitan:             {tag: "oc", name: "Occitan"},
	Ojibwa:              {tag: "oj", name: "Ojibwa"},
	OldEnglish:          {tag: "ang", name: "Old English"},
	Oriya:               {tag: "or", name: "Odia"},
	Oromo:               {tag: "om", name: "Oromo"},
	Ossetian:            {tag: "os", name: "Ossetian"},
	Pampanga:            {tag: "pam", name: "Pampanga"},
	Papiamento:          {tag: "pap", name: "Papiamento"},
	Pashto:              {tag: "ps", name: "Pashto"},
	Punjabi:             {tag: "pa", name: "Punjabi"},
	QueretaroOtomi:      {tag: "otq", name: "Querétaro Otomi"},
	Quechua:             {tag: "qu", name: "Quechua"},
	Romansh:             {tag: "rm", name: "Romansh"},
	Rusyn:               {tag: "rue", name: "Rusyn"},
	Samoan:              {tag: "sm", name: "Samoan"},
	Sanskrit:            {tag: "sa", name: "Sanskrit"},
	Sardinian:           {tag: "sc", name: "Sardinian"},
	Scots:               {tag: "sco", name: "Scots"},
	ScottishGaelic:      {tag: "gd", name: "Scottish Gaelic"},
	SerboCroatian:       {tag: "sh", name: "Serbo-Croatian"},
	Shan:                {tag: "shn", name: "Shan"},
	Shona:               {tag: "sn", name: "Shona"},
	Silesian:            {tag: "szl", name: "Silesian"},
	Sindhi:              {tag: "sd", name: "Sindhi"},
	Sinhala:             {tag: "si", name: "Sinhala"},
	Somali:              {tag: "so", name: "Somali"},
	Sorani:              {tag: "ckb", name: "Central Kurdish (Sorani)"},
	SouthNdebele:        {tag: "nr", name: "South Ndebele"},
	SouthernSotho:       {tag: "st", name: "Southern Sotho"},
	Sundanese:           {tag: "su", name: "Sundanese"},
	Syriac:              {tag: "syr", name: "Syriac"},
	Tahitian:            {tag: "ty", name: "Tahitian"},
	Tajik:               {tag: "tg", name: "Tajik"},
	Tatar:               {tag: "tt", name: "Tatar"},
	Telugu:              {tag: "te", name: "Telugu"},
	Tetum:               {tag: "tet", name: "Tetum"},
	Tigrinya:            {tag: "ti", name: "Tigrinya"},
	Tongan:              {tag: "to", name: "Tongan"},
	Tsonga:              {tag: "ts", name: "Tsonga"},
	TunisianArabic:      {tag: "aeb", name: "Tunisian Arabic"},
	Turkmen:             {tag: "tk", name: "Turkmen"},
	Twi:                 {tag: "tw", name: "Twi"},
	UpperSorbian:        {tag: "hsb", name: "Upper Sorbian"},
	Uzbek:               {tag: "uz", name: "Uzbek"},
	Venda:               {tag: "ve", name: "Venda"},
	Walloon:             {tag: "wa", name: "Walloon"},
	WesternFrisian:      {tag: "fy", name: "Western Frisian"},
	Wolof:               {tag: "wo", name: "Wolof"},
	Xhosa:               {tag: "xh", name: "Xhosa"},
	Yiddish:             {tag: "yi", name: "Yiddish"},
	Yoruba:              {tag: "yo", name: "Yoruba"},
	YucatecMaya:         {tag: "yua", name: "Yucatec Maya"},
	Zaza:                {tag: "zza", name: "Zaza"},
	Zulu:                {tag: "zu", name: "Zulu"},
}

// tagAliases accepts common regional, script or legacy tags in Parse.
var tagAliases = map[string]Code{
	"zh-cn":   Chinese,
	"zh-sg":   Chinese,
	"zh-hans": Chinese,
	"zh-tw":   ChineseTraditional,
	"zh-hk":   ChineseTraditional,
	"zh-mo":   ChineseTraditional,
	"nb":      Norwegian,
	"nn":      Norwegian,
	"iw":      Hebrew,
	"in":      Indonesian,
	"ji":      Yiddish,
	"jw":      Javanese,
	"tl":      Filipino,
	"mo":      Romanian,
	"sr-cyrl": Serbian,
	"sr-latn": Serbian,
	"bs-latn": Bosnian,
	"bs-cyrl": Bosnian,
	"uz-latn": Uzbek,
	"uz-cyrl": Uzbek,
	"az-latn": Azerbaijani,
	"az-cyrl": Azerbaijani,
	"mn-cyrl": Mongolian,
	"pa-guru": Punjabi,
	"pa-arab": Punjabi,
	"ku-latn": Kurdish,
	"ku-arab": Sorani,
	"mww":     Hmong,
}

var tagIndex = func() map[string]Code {
	index := make(map[string]Code, int(codeCount)+len(tagAliases))
	for code := Code(1); code < codeCount; code++ {
		index[codeInfos[code].tag] = code
	}
	for tag, code := range tagAliases {
		index[tag] = code
	}
	return index
}()

// scriptedPrimaries holds primary subtags that have a script-specific entry.
// An unknown script on one of these never falls back to the primary subtag.
var scriptedPrimaries = func() map[string]bool {
	primaries := make(map[string]bool)
	for tag := range tagIndex {
		if parts := strings.Split(tag, "-"); len(parts) == 2 && isScript(parts[1]) {
			primaries[parts[0]] = true
		}
	}
	return primaries
}()

// All returns every defined language except Undetermined, in declaration order.
func All() []Code {
	codes := make([]Code, 0, int(codeCount)-1)
	for code := Code(1); code < codeCount; code++ {
		codes = append(codes, code)
	}
	return codes
}

// Parse resolves a tag such as "en", "EN_us", "zh-Hant" or "zh-Hant-TW".
// A script subtag decides between entries that differ by script, so
// "zh-Hant-HK" is Traditional Chinese and "zh-Xyzw" is rejected. Without a
// known full tag the language-region pair is tried ("pt-Latn-BR" ->
// Brazilian Portuguese) and then the primary subtag ("de-AT" -> German).
// "und" and blank input are never accepted.
func Parse(raw string) (Code, bool) {
	tag := NormalizeTag(raw)
	if tag == "" {
		return Undetermined, false
	}
	if code, ok := tagIndex[tag]; ok {
		return code, true
	}

	primary, script, region := splitTag(tag)
	if script != "" {
		if code, ok := tagIndex[primary+"-"+script]; ok {
			return code, true
		}
		if scriptedPrimaries[primary] {
			return Undetermined, false
		}
	}
	if region != "" {
		if code, ok := tagIndex[primary+"-"+region]; ok {
			return code, true
		}
	}
	if code, ok := tagIndex[primary]; ok {
		return code, true
	}
	return Undetermined, false
}

func (c Code) IsValid() bool {
	return c > Undetermined && c < codeCount
}

// String returns the canonical tag.
func (c Code) String() string {
	if c >= codeCount {
		return codeInfos[Undetermined].tag
	}
	return codeInfos[c].tag
}

// Name returns the English display name.
func (c Code) Name() string {
	if c >= codeCount {
		return codeInfos[Undetermined].name
	}
	return codeInfos[c].name
}

func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
