package vocabulary

import "vocabpopup/internal/domain"

// defaultPairs is the minimal built-in set used when no vocabulary file is
// found, so the popup stays usable out of the box.
var defaultPairs = []domain.Entry{
	{Term: "bonjour", Translation: "hallo"},
	{Term: "merci", Translation: "danke"},
	{Term: "pomme", Translation: "Apfel"},
	{Term: "maison", Translation: "Haus"},
	{Term: "chien", Translation: "Hund"},
	{Term: "école", Translation: "Schule"},
	{Term: "livre", Translation: "Buch"},
	{Term: "eau", Translation: "Wasser"},
}
