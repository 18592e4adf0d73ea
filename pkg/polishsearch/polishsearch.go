// Package polishsearch buduje filtry LIKE niewrażliwe na wielkość liter
// i polskie znaki diakrytyczne. Klient wpisujący "nowak" ma znaleźć
// "Nówak", a "zolty" ma trafić w "Żółty".
package polishsearch

import "strings"

const (
	plLower    = "ąćęłńóśźż"
	asciiLower = "acelnoszz"
)

var folder = strings.NewReplacer(
	"ą", "a", "ć", "c", "ę", "e", "ł", "l", "ń", "n", "ó", "o", "ś", "s", "ź", "z", "ż", "z",
	"Ą", "a", "Ć", "c", "Ę", "e", "Ł", "l", "Ń", "n", "Ó", "o", "Ś", "s", "Ź", "z", "Ż", "z",
)

// Normalize sprowadza tekst do małych liter bez polskich diakrytyków.
func Normalize(s string) string {
	return strings.ToLower(folder.Replace(s))
}

// SQLFilter zwraca fragment WHERE porównujący kolumnę z termem po
// normalizacji po obu stronach. translate() wykonuje po stronie Postgresa
// to samo złożenie diakrytyków, które Normalize robi w Go.
func SQLFilter(column, term string) (string, []interface{}) {
	fragment := "translate(lower(" + column + "), '" + plLower + "', '" + asciiLower + "') LIKE ?"
	return fragment, []interface{}{"%" + Normalize(term) + "%"}
}

// Contains sprawdza dopasowanie podciągu po normalizacji, odpowiednik
// SQLFilter dla danych już wczytanych do pamięci.
func Contains(haystack, needle string) bool {
	return strings.Contains(Normalize(haystack), Normalize(needle))
}
