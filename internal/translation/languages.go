package translation

import (
	"fmt"
	"strings"

	"horse.fit/fusiontranslate/internal/language"
)

// LanguageOption describes one language a provider accepts.
type LanguageOption struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Wire  string `json:"wire"`
}

type wireEntry struct {
	code    language.Code
	wire    string
	aliases []string
}

func w(code language.Code, wire string, aliases ...string) wireEntry {
	return wireEntry{code: code, wire: wire, aliases: aliases}
}

// vocabulary maps canonical codes to one provider's wire codes. Encoding
// always yields the primary wire code; decoding also accepts aliases and is
// case-insensitive. Providers that speak ISO tags additionally decode any tag
// language.Parse resolves to a supported language ("ca-AD" -> Catalan).
type vocabulary struct {
	auto        string
	encode      map[language.Code]string
	decode      map[string]language.Code
	tagFallback bool
}

func newVocabulary(auto string, entries ...wireEntry) *vocabulary {
	v := &vocabulary{
		auto:   auto,
		encode: make(map[language.Code]string, len(entries)),
		decode: make(map[string]language.Code, len(entries)),
	}
	for _, entry := range entries {
		if _, dup := v.encode[entry.code]; dup {
			panic(fmt.Sprintf("duplicate wire entry for %s", entry.code))
		}
		v.encode[entry.code] = entry.wire
		v.decode[strings.ToLower(entry.wire)] = entry.code
		for _, alias := range entry.aliases {
			v.decode[strings.ToLower(alias)] = entry.code
		}
	}
	return v
}

func (v *vocabulary) withTagFallback() *vocabulary {
	v.tagFallback = true
	return v
}

func (v *vocabulary) lookup(wire string) (language.Code, bool) {
	key := strings.ToLower(strings.TrimSpace(wire))
	if code, ok := v.decode[key]; ok {
		return code, true
	}
	if !v.tagFallback {
		return language.Undetermined, false
	}
	code, ok := language.Parse(key)
	if !ok {
		return language.Undetermined, false
	}
	if _, supported := v.encode[code]; !supported {
		return language.Undetermined, false
	}
	return code, true
}

var vocabularies = map[Kind]*vocabulary{
	KindBaidu: newVocabulary("auto",
		w(language.Chinese, "zh"),
		w(language.ChineseTraditional, "cht"),
		w(language.ClassicalChinese, "wyw"),
		w(language.Cantonese, "yue"),
		w(language.English, "en"),
		w(language.Japanese, "jp"),
		w(language.Korean, "kor"),
		w(language.French, "fra"),
		w(language.CanadianFrench, "frn"),
		w(language.Spanish, "spa"),
		w(language.Portuguese, "pt"),
		w(language.BrazilianPortuguese, "pot"),
		w(language.German, "de"),
		w(language.Italian, "it"),
		w(language.Russian, "ru"),
		w(language.Arabic, "ara"),
		w(language.Thai, "th"),
		w(language.Vietnamese, "vie"),
		w(language.Indonesian, "id"),
		w(language.Malay, "may"),
		w(language.Dutch, "nl"),
		w(language.Polish, "pl"),
		w(language.Turkish, "tr"),
		w(language.Greek, "el"),
		w(language.Czech, "cs"),
		w(language.Swedish, "swe"),
		w(language.Danish, "dan"),
		w(language.Finnish, "fin"),
		w(language.Hungarian, "hu"),
		w(language.Romanian, "rom", "ro"),
		w(language.Bulgarian, "bul"),
		w(language.Estonian, "est"),
		w(language.Slovenian, "slo"),
		w(language.Slovak, "sk"),
		w(language.Ukrainian, "ukr"),
		w(language.Hindi, "hi"),
		w(language.Hebrew, "heb"),
		w(language.Persian, "per"),
		w(language.Norwegian, "nor", "nob", "nno"),
		w(language.Serbian, "srp", "src"),
		w(language.Croatian, "hrv"),
		w(language.Lithuanian, "lit"),
		w(language.Latvian, "lav"),
		w(language.Filipino, "fil", "tgl"),
		w(language.Bengali, "ben"),
		w(language.Urdu, "urd"),
		w(language.Tamil, "tam"),
		w(language.Swahili, "swa"),
		w(language.Latin, "lat"),
		w(language.Welsh, "wel"),
		w(language.Irish, "gle"),
		w(language.Icelandic, "ice"),
		w(language.Afrikaans, "afr"),
		w(language.Acholi, "ach"),
		w(language.Akan, "aka"),
		w(language.Albanian, "alb"),
		w(language.AlgerianArabic, "arq"),
		w(language.Amharic, "amh"),
		w(language.AncientGreek, "gra"),
		w(language.Aragonese, "arg"),
		w(language.Armenian, "arm"),
		w(language.Assamese, "asm"),
		w(language.Asturian, "ast"),
		w(language.Aymara, "aym"),
		w(language.Azerbaijani, "aze"),
		w(language.Baluchi, "bal"),
		w(language.Bashkir, "bak"),
		w(language.Basque, "baq"),
		w(language.Belarusian, "bel"),
		w(language.Bemba, "bem"),
		w(language.Berber, "ber"),
		w(language.Bhojpuri, "bho"),
		w(language.Bislama, "bis"),
		w(language.Blin, "bli"),
		w(language.Bosnian, "bos"),
		w(language.Breton, "bre"),
		w(language.Burmese, "bur"),
		w(language.Catalan, "cat"),
		w(language.Cebuano, "ceb"),
		w(language.Cherokee, "chr"),
		w(language.Chichewa, "nya"),
		w(language.Chuvash, "chv"),
		w(language.Cornish, "cor"),
		w(language.Corsican, "cos"),
		w(language.Cree, "cre"),
		w(language.CrimeanTatar, "cri"),
		w(language.Dhivehi, "div"),
		w(language.Esperanto, "epo"),
		w(language.Faroese, "fao"),
		w(language.Friulian, "fri"),
		w(language.Fulah, "ful"),
		w(language.Galician, "glg"),
		w(language.Ganda, "lug"),
		w(language.Georgian, "geo"),
		w(language.Greenlandic, "kal"),
		w(language.Guarani, "grn"),
		w(language.Gujarati, "guj"),
		w(language.HaitianCreole, "ht"),
		w(language.Hakka, "hak"),
		w(language.Hausa, "hau"),
		w(language.Hawaiian, "haw"),
		w(language.Hiligaynon, "hil"),
		w(language.Hmong, "hmn"),
		w(language.Hupa, "hup"),
		w(language.Ido, "ido"),
		w(language.Igbo, "ibo"),
		w(language.Ingush, "ing"),
		w(language.Interlingua, "ina"),
		w(language.Inuktitut, "iku"),
		w(language.Javanese, "jav"),
		w(language.Kabyle, "kab"),
		w(language.Kannada, "kan"),
		w(language.Kanuri, "kau"),
		w(language.Kashmiri, "kas"),
		w(language.Kashubian, "kah"),
		w(language.Khmer, "hkm"),
		w(language.Kinyarwanda, "kin"),
		w(language.Klingon, "kli"),
		w(language.Kongo, "kon"),
		w(language.Konkani, "kok"),
		w(language.Kurdish, "kur"),
		w(language.Kyrgyz, "kir"),
		w(language.Lao, "lao"),
		w(language.Latgalian, "lag"),
		w(language.Limburgish, "lim"),
		w(language.Lingala, "lin"),
		w(language.Lojban, "loj"),
		w(language.LowGerman, "log"),
		w(language.LowerSorbian, "los"),
		w(language.Luxembourgish, "ltz"),
		w(language.Macedonian, "mac"),
		w(language.Maithili, "mai"),
		w(language.Malagasy, "mg"),
		w(language.Malayalam, "mal"),
		w(language.Maltese, "mlt"),
		w(language.Manx, "glv"),
		w(language.Maori, "mao"),
		w(language.Marathi, "mar"),
		w(language.Marshallese, "mah"),
		w(language.MauritianCreole, "mau"),
		w(language.MiddleFrench, "frm"),
		w(language.Montenegrin, "mot"),
		w(language.NKo, "nqo"),
		w(language.Neapolitan, "nea"),
		w(language.Nepali, "nep"),
		w(language.NorthernSami, "sme"),
		w(language.NorthernSotho, "ped"),
		w(language.Occitan, "oci"),
		w(language.Ojibwa, "oji"),
		w(language.OldEnglish, "eno"),
		w(language.Oriya, "ori"),
		w(language.Oromo, "orm"),
		w(language.Ossetian, "oss"),
		w(language.Pampanga, "pam"),
		w(language.Papiamento, "pap"),
		w(language.Pashto, "pus"),
		w(language.Punjabi, "pan"),
		w(language.Quechua, "que"),
		w(language.Romansh, "roh"),
		w(language.Rusyn, "ruy"),
		w(language.Samoan, "sm"),
		w(language.Sanskrit, "san"),
		w(language.Sardinian, "srd"),
		w(language.Scots, "sco"),
		w(language.ScottishGaelic, "gla"),
		w(language.SerboCroatian, "sec"),
		w(language.Shan, "sha"),
		w(language.Shona, "sna"),
		w(language.Silesian, "sil"),
		w(language.Sindhi, "snd"),
		w(language.Sinhala, "sin"),
		w(language.Somali, "som"),
		w(language.Sorani, "sol"),
		w(language.SouthNdebele, "nbl"),
		w(language.SouthernSotho, "sot"),
		w(language.Sundanese, "sun"),
		w(language.Syriac, "syr"),
		w(language.Tajik, "tgk"),
		w(language.Tatar, "tat"),
		w(language.Telugu, "tel"),
		w(language.Tetum, "tet"),
		w(language.Tigrinya, "tir"),
		w(language.Tsonga, "tso"),
		w(language.TunisianArabic, "tua"),
		w(language.Turkmen, "tuk"),
		w(language.Twi, "twi"),
		w(language.UpperSorbian, "ups"),
		w(language.Venda, "ven"),
		w(language.Walloon, "wln"),
		w(language.WesternFrisian, "fry"),
		w(language.Wolof, "wol"),
		w(language.Xhosa, "xho"),
		w(language.Yiddish, "yid"),
		w(language.Yoruba, "yor"),
		w(language.Zaza, "zaz"),
		w(language.Zulu, "zul"),
	),
	KindYoudao: newVocabulary("auto",
		w(language.Chinese, "zh-CHS"),
		w(language.ChineseTraditional, "zh-CHT"),
		w(language.Cantonese, "yue"),
		w(language.English, "en"),
		w(language.Japanese, "ja"),
		w(language.Korean, "ko"),
		w(language.French, "fr"),
		w(language.Spanish, "es"),
		w(language.Portuguese, "pt"),
		w(language.German, "de"),
		w(language.Italian, "it"),
		w(language.Russian, "ru"),
		w(language.Arabic, "ar"),
		w(language.Thai, "th"),
		w(language.Vietnamese, "vi"),
		w(language.Indonesian, "id"),
		w(language.Malay, "ms"),
		w(language.Dutch, "nl"),
		w(language.Polish, "pl"),
		w(language.Turkish, "tr"),
		w(language.Greek, "el"),
		w(language.Czech, "cs"),
		w(language.Swedish, "sv"),
		w(language.Danish, "da"),
		w(language.Finnish, "fi"),
		w(language.Hungarian, "hu"),
		w(language.Romanian, "ro"),
		w(language.Bulgarian, "bg"),
		w(language.Estonian, "et"),
		w(language.Slovenian, "sl"),
		w(language.Slovak, "sk"),
		w(language.Ukrainian, "uk"),
		w(language.Hindi, "hi"),
		w(language.Hebrew, "he"),
		w(language.Persian, "fa"),
		w(language.Norwegian, "no"),
		w(language.Serbian, "sr-Cyrl", "sr-Latn"),
		w(language.Croatian, "hr"),
		w(language.Lithuanian, "lt"),
		w(language.Latvian, "lv"),
		w(language.Filipino, "tl"),
		w(language.Bengali, "bn"),
		w(language.Urdu, "ur"),
		w(language.Tamil, "ta"),
		w(language.Swahili, "sw"),
		w(language.Latin, "la"),
		w(language.Welsh, "cy"),
		w(language.Irish, "ga"),
		w(language.Icelandic, "is"),
		w(language.Afrikaans, "af"),
		w(language.Albanian, "sq"),
		w(language.Amharic, "am"),
		w(language.Armenian, "hy"),
		w(language.Azerbaijani, "az"),
		w(language.Basque, "eu"),
		w(language.Belarusian, "be"),
		w(language.Bosnian, "bs"),
		w(language.Burmese, "my"),
		w(language.Catalan, "ca"),
		w(language.Cebuano, "ceb"),
		w(language.Chichewa, "ny"),
		w(language.Corsican, "co"),
		w(language.Esperanto, "eo"),
		w(language.Fijian, "fj"),
		w(language.Galician, "gl"),
		w(language.Georgian, "ka"),
		w(language.Gujarati, "gu"),
		w(language.HaitianCreole, "ht"),
		w(language.Hausa, "ha"),
		w(language.Hawaiian, "haw"),
		w(language.Hmong, "mww"),
		w(language.Igbo, "ig"),
		w(language.Javanese, "jw"),
		w(language.Kannada, "kn"),
		w(language.Kazakh, "kk"),
		w(language.Khmer, "km"),
		w(language.Klingon, "tlh"),
		w(language.Kurdish, "ku"),
		w(language.Kyrgyz, "ky"),
		w(language.Lao, "lo"),
		w(language.Luxembourgish, "lb"),
		w(language.Macedonian, "mk"),
		w(language.Malagasy, "mg"),
		w(language.Malayalam, "ml"),
		w(language.Maltese, "mt"),
		w(language.Maori, "mi"),
		w(language.Marathi, "mr"),
		w(language.Mongolian, "mn"),
		w(language.Nepali, "ne"),
		w(language.Pashto, "ps"),
		w(language.Punjabi, "pa"),
		w(language.QueretaroOtomi, "otq"),
		w(language.Samoan, "sm"),
		w(language.ScottishGaelic, "gd"),
		w(language.Shona, "sn"),
		w(language.Sindhi, "sd"),
		w(language.Sinhala, "si"),
		w(language.Somali, "so"),
		w(language.SouthernSotho, "st"),
		w(language.Sundanese, "su"),
		w(language.Tahitian, "ty"),
		w(language.Tajik, "tg"),
		w(language.Telugu, "te"),
		w(language.Tongan, "to"),
		w(language.Uzbek, "uz"),
		w(language.WesternFrisian, "fy"),
		w(language.Xhosa, "xh"),
		w(language.Yiddish, "yi"),
		w(language.Yoruba, "yo"),
		w(language.YucatecMaya, "yua"),
		w(language.Zulu, "zu"),
	),
	KindCaiyun: newVocabulary("auto",
		w(language.Chinese, "zh"),
		w(language.ChineseTraditional, "zh-Hant"),
		w(language.English, "en"),
		w(language.Japanese, "ja"),
		w(language.Korean, "ko"),
		w(language.French, "fr"),
		w(language.Spanish, "es"),
		w(language.Portuguese, "pt"),
		w(language.German, "de"),
		w(language.Italian, "it"),
		w(language.Russian, "ru"),
		w(language.Arabic, "ar"),
		w(language.Thai, "th"),
		w(language.Vietnamese, "vi"),
		w(language.Turkish, "tr"),
	),
	KindAlibaba: newVocabulary("auto",
		w(language.Chinese, "zh"),
		w(language.ChineseTraditional, "zh-tw"),
		w(language.English, "en"),
		w(language.Japanese, "ja"),
		w(language.Korean, "ko"),
		w(language.French, "fr"),
		w(language.Spanish, "es"),
		w(language.Portuguese, "pt"),
		w(language.German, "de"),
		w(language.Italian, "it"),
		w(language.Russian, "ru"),
		w(language.Arabic, "ar"),
		w(language.Thai, "th"),
		w(language.Vietnamese, "vi"),
		w(language.Indonesian, "id"),
		w(language.Malay, "ms"),
		w(language.Dutch, "nl"),
		w(language.Polish, "pl"),
		w(language.Turkish, "tr"),
		w(language.Greek, "el"),
		w(language.Czech, "cs"),
		w(language.Swedish, "sv"),
		w(language.Danish, "da"),
		w(language.Finnish, "fi"),
		w(language.Hungarian, "hu"),
		w(language.Romanian, "ro"),
		w(language.Bulgarian, "bg"),
		w(language.Estonian, "et"),
		w(language.Slovenian, "sl"),
		w(language.Slovak, "sk"),
		w(language.Ukrainian, "uk"),
		w(language.Hindi, "hi"),
		w(language.Hebrew, "he"),
		w(language.Persian, "fa"),
		w(language.Norwegian, "no"),
		w(language.Serbian, "sr"),
		w(language.Croatian, "hr"),
		w(language.Lithuanian, "lt"),
		w(language.Latvian, "lv"),
		w(language.Filipino, "tl", "fil"),
		w(language.Bengali, "bn"),
		w(language.Urdu, "ur"),
		w(language.Tamil, "ta"),
		w(language.Swahili, "sw"),
		w(language.Latin, "la"),
		w(language.Welsh, "cy"),
		w(language.Irish, "ga"),
		w(language.Icelandic, "is"),
		w(language.Afrikaans, "af"),
		w(language.Akan, "ak"),
		w(language.Albanian, "sq"),
		w(language.Amharic, "am"),
		w(language.Aragonese, "an"),
		w(language.Armenian, "hy"),
		w(language.Assamese, "as"),
		w(language.Aymara, "ay"),
		w(language.Azerbaijani, "az"),
		w(language.Bashkir, "ba"),
		w(language.Basque, "eu"),
		w(language.Belarusian, "be"),
		w(language.Bislama, "bi"),
		w(language.Bosnian, "bs"),
		w(language.Breton, "br"),
		w(language.Burmese, "my"),
		w(language.Catalan, "ca"),
		w(language.Chichewa, "ny"),
		w(language.Chuvash, "cv"),
		w(language.Cornish, "kw"),
		w(language.Corsican, "co"),
		w(language.Cree, "cr"),
		w(language.Dhivehi, "dv"),
		w(language.Esperanto, "eo"),
		w(language.Faroese, "fo"),
		w(language.Fijian, "fj"),
		w(language.Fulah, "ff"),
		w(language.Galician, "gl"),
		w(language.Ganda, "lg"),
		w(language.Georgian, "ka"),
		w(language.Greenlandic, "kl"),
		w(language.Guarani, "gn"),
		w(language.Gujarati, "gu"),
		w(language.HaitianCreole, "ht"),
		w(language.Hausa, "ha"),
		w(language.Ido, "io"),
		w(language.Igbo, "ig"),
		w(language.Interlingua, "ia"),
		w(language.Inuktitut, "iu"),
		w(language.Javanese, "jv"),
		w(language.Kannada, "kn"),
		w(language.Kanuri, "kr"),
		w(language.Kashmiri, "ks"),
		w(language.Kazakh, "kk"),
		w(language.Khmer, "km"),
		w(language.Kinyarwanda, "rw"),
		w(language.Kongo, "kg"),
		w(language.Kurdish, "ku"),
		w(language.Kyrgyz, "ky"),
		w(language.Lao, "lo"),
		w(language.Limburgish, "li"),
		w(language.Lingala, "ln"),
		w(language.Luxembourgish, "lb"),
		w(language.Macedonian, "mk"),
		w(language.Malagasy, "mg"),
		w(language.Malayalam, "ml"),
		w(language.Maltese, "mt"),
		w(language.Manx, "gv"),
		w(language.Maori, "mi"),
		w(language.Marathi, "mr"),
		w(language.Marshallese, "mh"),
		w(language.Mongolian, "mn"),
		w(language.Nepali, "ne"),
		w(language.NorthernSami, "se"),
		w(language.Occitan, "oc"),
		w(language.Ojibwa, "oj"),
		w(language.Oriya, "or"),
		w(language.Oromo, "om"),
		w(language.Ossetian, "os"),
		w(language.Pashto, "ps"),
		w(language.Punjabi, "pa"),
		w(language.Quechua, "qu"),
		w(language.Romansh, "rm"),
		w(language.Samoan, "sm"),
		w(language.Sanskrit, "sa"),
		w(language.Sardinian, "sc"),
		w(language.ScottishGaelic, "gd"),
		w(language.SerboCroatian, "sh"),
		w(language.Shona, "sn"),
		w(language.Sindhi, "sd"),
		w(language.Sinhala, "si"),
		w(language.Somali, "so"),
		w(language.SouthNdebele, "nr"),
		w(language.SouthernSotho, "st"),
		w(language.Sundanese, "su"),
		w(language.Tahitian, "ty"),
		w(language.Tajik, "tg"),
		w(language.Tatar, "tt"),
		w(language.Telugu, "te"),
		w(language.Tigrinya, "ti"),
		w(language.Tongan, "to"),
		w(language.Tsonga, "ts"),
		w(language.Turkmen, "tk"),
		w(language.Twi, "tw"),
		w(language.Uzbek, "uz"),
		w(language.Venda, "ve"),
		w(language.Walloon, "wa"),
		w(language.WesternFrisian, "fy"),
		w(language.Wolof, "wo"),
		w(language.Xhosa, "xh"),
		w(language.Yiddish, "yi"),
		w(language.Yoruba, "yo"),
		w(language.Zulu, "zu"),
	).withTagFallback(),
	KindMyMemory: newVocabulary("Autodetect",
		w(language.Chinese, "zh-CN", "zh"),
		w(language.ChineseTraditional, "zh-TW", "zh-HK"),
		w(language.Cantonese, "yue"),
		w(language.English, "en-GB", "en", "en-US"),
		w(language.Japanese, "ja-JP", "ja"),
		w(language.Korean, "ko-KR", "ko"),
		w(language.French, "fr-FR", "fr"),
		w(language.CanadianFrench, "fr-CA"),
		w(language.Spanish, "es-ES", "es"),
		w(language.Portuguese, "pt-PT", "pt"),
		w(language.BrazilianPortuguese, "pt-BR"),
		w(language.German, "de-DE", "de"),
		w(language.Italian, "it-IT", "it"),
		w(language.Russian, "ru-RU", "ru"),
		w(language.Arabic, "ar-SA", "ar"),
		w(language.Thai, "th-TH", "th"),
		w(language.Vietnamese, "vi-VN", "vi"),
		w(language.Indonesian, "id-ID", "id"),
		w(language.Malay, "ms-MY", "ms"),
		w(language.Dutch, "nl-NL", "nl"),
		w(language.Polish, "pl-PL", "pl"),
		w(language.Turkish, "tr-TR", "tr"),
		w(language.Greek, "el-GR", "el"),
		w(language.Czech, "cs-CZ", "cs"),
		w(language.Swedish, "sv-SE", "sv"),
		w(language.Danish, "da-DK", "da"),
		w(language.Finnish, "fi-FI", "fi"),
		w(language.Hungarian, "hu-HU", "hu"),
		w(language.Romanian, "ro-RO", "ro"),
		w(language.Bulgarian, "bg-BG", "bg"),
		w(language.Estonian, "et-EE", "et"),
		w(language.Slovenian, "sl-SI", "sl"),
		w(language.Slovak, "sk-SK", "sk"),
		w(language.Ukrainian, "uk-UA", "uk"),
		w(language.Hindi, "hi-IN", "hi"),
		w(language.Hebrew, "he-IL", "he"),
		w(language.Persian, "fa-IR", "fa"),
		w(language.Norwegian, "nb-NO", "no", "nb"),
		w(language.Serbian, "sr-RS", "sr"),
		w(language.Croatian, "hr-HR", "hr"),
		w(language.Lithuanian, "lt-LT", "lt"),
		w(language.Latvian, "lv-LV", "lv"),
		w(language.Filipino, "tl-PH", "tl", "fil"),
		w(language.Bengali, "bn-IN", "bn"),
		w(language.Urdu, "ur-PK", "ur"),
		w(language.Tamil, "ta-IN", "ta"),
		w(language.Swahili, "sw-KE", "sw"),
		w(language.Latin, "la-VA", "la"),
		w(language.Welsh, "cy-GB", "cy"),
		w(language.Irish, "ga-IE", "ga"),
		w(language.Icelandic, "is-IS", "is"),
		w(language.Afrikaans, "af-ZA", "af"),
		w(language.Akan, "ak"),
		w(language.Albanian, "sq-AL", "sq"),
		w(language.Amharic, "am-ET", "am"),
		w(language.Aragonese, "an"),
		w(language.Armenian, "hy-AM", "hy"),
		w(language.Assamese, "as"),
		w(language.Aymara, "ay"),
		w(language.Azerbaijani, "az-AZ", "az"),
		w(language.Bashkir, "ba"),
		w(language.Basque, "eu-ES", "eu"),
		w(language.Belarusian, "be-BY", "be"),
		w(language.Bislama, "bi"),
		w(language.Bosnian, "bs-BA", "bs"),
		w(language.Breton, "br"),
		w(language.Burmese, "my-MM", "my"),
		w(language.Catalan, "ca-ES", "ca"),
		w(language.Cebuano, "ceb"),
		w(language.Chichewa, "ny"),
		w(language.Chuvash, "cv"),
		w(language.Cornish, "kw"),
		w(language.Corsican, "co"),
		w(language.Cree, "cr"),
		w(language.Dhivehi, "dv"),
		w(language.Esperanto, "eo"),
		w(language.Faroese, "fo"),
		w(language.Fijian, "fj"),
		w(language.Fulah, "ff"),
		w(language.Galician, "gl-ES", "gl"),
		w(language.Ganda, "lg"),
		w(language.Georgian, "ka-GE", "ka"),
		w(language.Greenlandic, "kl"),
		w(language.Guarani, "gn"),
		w(language.Gujarati, "gu"),
		w(language.HaitianCreole, "ht"),
		w(language.Hausa, "ha"),
		w(language.Hawaiian, "haw"),
		w(language.Hmong, "hmn"),
		w(language.Ido, "io"),
		w(language.Igbo, "ig"),
		w(language.Interlingua, "ia"),
		w(language.Inuktitut, "iu"),
		w(language.Javanese, "jv"),
		w(language.Kannada, "kn"),
		w(language.Kanuri, "kr"),
		w(language.Kashmiri, "ks"),
		w(language.Kazakh, "kk-KZ", "kk"),
		w(language.Khmer, "km-KH", "km"),
		w(language.Kinyarwanda, "rw"),
		w(language.Kongo, "kg"),
		w(language.Kurdish, "ku"),
		w(language.Kyrgyz, "ky"),
		w(language.Lao, "lo-LA", "lo"),
		w(language.Limburgish, "li"),
		w(language.Lingala, "ln"),
		w(language.Luxembourgish, "lb"),
		w(language.Macedonian, "mk-MK", "mk"),
		w(language.Malagasy, "mg"),
		w(language.Malayalam, "ml"),
		w(language.Maltese, "mt-MT", "mt"),
		w(language.Manx, "gv"),
		w(language.Maori, "mi"),
		w(language.Marathi, "mr"),
		w(language.Marshallese, "mh"),
		w(language.Mongolian, "mn-MN", "mn"),
		w(language.Nepali, "ne-NP", "ne"),
		w(language.NorthernSami, "se"),
		w(language.Occitan, "oc"),
		w(language.Ojibwa, "oj"),
		w(language.Oriya, "or"),
		w(language.Oromo, "om"),
		w(language.Ossetian, "os"),
		w(language.Pashto, "ps"),
		w(language.Punjabi, "pa"),
		w(language.Quechua, "qu"),
		w(language.Romansh, "rm"),
		w(language.Samoan, "sm"),
		w(language.Sanskrit, "sa"),
		w(language.Sardinian, "sc"),
		w(language.ScottishGaelic, "gd"),
		w(language.SerboCroatian, "sh"),
		w(language.Shona, "sn"),
		w(language.Sindhi, "sd"),
		w(language.Sinhala, "si-LK", "si"),
		w(language.Somali, "so"),
		w(language.SouthNdebele, "nr"),
		w(language.SouthernSotho, "st"),
		w(language.Sundanese, "su"),
		w(language.Tahitian, "ty"),
		w(language.Tajik, "tg"),
		w(language.Tatar, "tt"),
		w(language.Telugu, "te"),
		w(language.Tigrinya, "ti"),
		w(language.Tongan, "to"),
		w(language.Tsonga, "ts"),
		w(language.Turkmen, "tk"),
		w(language.Twi, "tw"),
		w(language.Uzbek, "uz-UZ", "uz"),
		w(language.Venda, "ve"),
		w(language.Walloon, "wa"),
		w(language.WesternFrisian, "fy"),
		w(language.Wolof, "wo"),
		w(language.Xhosa, "xh"),
		w(language.Yiddish, "yi"),
		w(language.Yoruba, "yo"),
		w(language.Zulu, "zu"),
	).withTagFallback(),
}

// ToProviderCode returns the provider's wire code for code. It reports false
// when the provider does not support the language.
func ToProviderCode(code language.Code, kind Kind) (string, bool) {
	v, ok := vocabularies[kind]
	if !ok {
		return "", false
	}
	wire, ok := v.encode[code]
	return wire, ok
}

// FromProviderCode maps a provider wire code back to a canonical language.
func FromProviderCode(wire string, kind Kind) (language.Code, bool) {
	v, ok := vocabularies[kind]
	if !ok {
		return language.Undetermined, false
	}
	return v.lookup(wire)
}

// SupportedLanguages lists the languages a provider accepts, in canonical order.
func SupportedLanguages(kind Kind) []language.Code {
	v, ok := vocabularies[kind]
	if !ok {
		return nil
	}
	codes := make([]language.Code, 0, len(v.encode))
	for _, code := range language.All() {
		if _, ok := v.encode[code]; ok {
			codes = append(codes, code)
		}
	}
	return codes
}

// LanguageOptions lists SupportedLanguages with display labels and wire codes.
func LanguageOptions(kind Kind) []LanguageOption {
	codes := SupportedLanguages(kind)
	options := make([]LanguageOption, 0, len(codes))
	for _, code := range codes {
		wire, _ := ToProviderCode(code, kind)
		options = append(options, LanguageOption{
			Code:  code.String(),
			Label: code.Name(),
			Wire:  wire,
		})
	}
	return options
}

// sourceWireCode encodes a source language. Undetermined selects the
// provider's auto-detect token; any other unmappable code is an error.
func sourceWireCode(kind Kind, code language.Code) (string, error) {
	if code == language.Undetermined {
		return vocabularies[kind].auto, nil
	}
	return targetWireCode(kind, code)
}

func targetWireCode(kind Kind, code language.Code) (string, error) {
	wire, ok := ToProviderCode(code, kind)
	if !ok {
		return "", &Error{
			Class:    ErrUnmappableLanguage,
			Provider: kind,
			Message:  fmt.Sprintf("%s (%s)", code.Name(), code),
		}
	}
	return wire, nil
}

// decodeWireCode maps a provider-reported language back. Blank input and the
// provider's auto token mean the provider reported nothing.
func decodeWireCode(kind Kind, wire string) (language.Code, error) {
	trimmed := strings.TrimSpace(wire)
	if trimmed == "" || strings.EqualFold(trimmed, vocabularies[kind].auto) {
		return language.Undetermined, nil
	}
	code, ok := FromProviderCode(wire, kind)
	if !ok {
		return language.Undetermined, &Error{
			Class:    ErrUndecodableLanguage,
			Provider: kind,
			Code:     wire,
		}
	}
	return code, nil
}
