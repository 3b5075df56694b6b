// Package lexicon holds the static reference tables the extraction pipeline
// matches against: known conditions and their synonyms, known medication names,
// pharmacological suffixes, stop-word sets and per-condition default treatments.
// These tables are heuristics, not a medical database; the suffix classifier in
// particular has known false positives and is deliberately permissive.
package lexicon

import "strings"

// Conditions is the fixed set of canonical condition labels.
var Conditions = []string{
	"Type 2 Diabetes",
	"Hypertension",
	"Hyperlipidemia",
	"GERD",
	"Sleep Apnea",
	"Osteoarthritis",
}

// conditionSynonyms maps lower-cased substrings to canonical condition labels.
// Order matters: the first matching entry wins.
var conditionSynonyms = []struct {
	Substrings []string
	Canonical  string
}{
	{[]string{"diabetes", "type 2", "type ii"}, "Type 2 Diabetes"},
	{[]string{"hypertension", "high blood pressure"}, "Hypertension"},
	{[]string{"cholesterol", "lipid", "hyperlipidemia"}, "Hyperlipidemia"},
	{[]string{"gerd", "acid reflux", "heartburn"}, "GERD"},
	{[]string{"sleep apnea", "osa"}, "Sleep Apnea"},
	{[]string{"arthritis", "joint pain"}, "Osteoarthritis"},
}

// CanonicalCondition returns the canonical label whose synonym list matches the
// lower-cased text, or "" when nothing matches.
func CanonicalCondition(lowerText string) string {
	for _, entry := range conditionSynonyms {
		for _, sub := range entry.Substrings {
			if strings.Contains(lowerText, sub) {
				return entry.Canonical
			}
		}
	}
	return ""
}

// IsKnownCondition reports whether label is one of the canonical conditions.
func IsKnownCondition(label string) bool {
	for _, c := range Conditions {
		if c == label {
			return true
		}
	}
	return false
}

// KnownMedications is the fixed reference list used to validate candidate names.
var KnownMedications = []string{
	"Metformin", "Glipizide", "Januvia", "Ozempic", "Jardiance", "Insulin",
	"Glyburide", "Trulicity", "Victoza",
	"Lisinopril", "Amlodipine", "Losartan", "Hydrochlorothiazide", "Atenolol",
	"Metoprolol", "Valsartan", "Diltiazem",
	"Atorvastatin", "Rosuvastatin", "Simvastatin", "Pravastatin", "Ezetimibe",
	"Fenofibrate", "Lovastatin",
	"Omeprazole", "Pantoprazole", "Famotidine", "Esomeprazole", "Ranitidine",
	"Lansoprazole", "Cimetidine",
	"CPAP", "BiPAP", "Modafinil", "Armodafinil", "Acetazolamide", "Inspire Therapy",
	"Acetaminophen", "Ibuprofen", "Naproxen", "Diclofenac", "Meloxicam",
	"Celecoxib", "Duloxetine", "Tramadol",
}

// IsKnownMedication reports whether name exactly matches a known medication,
// ignoring case.
func IsKnownMedication(name string) bool {
	for _, med := range KnownMedications {
		if strings.EqualFold(med, name) {
			return true
		}
	}
	return false
}

// MedicationSuffixes are pharmacological name endings used as a heuristic
// classifier. The generic endings (in, ol, ide...) accept plenty of ordinary
// words too; callers accept that trade-off.
var MedicationSuffixes = []string{
	"in", "ol", "ide", "ine", "ate", "one", "il",
	"pril", "sartan", "statin", "mab", "zole", "prazole", "pam", "lol",
}

// DrugNameTokens feeds the primary word-boundary extraction pattern. It covers
// the most commonly prescribed drugs across the supported condition set.
var DrugNameTokens = []string{
	"aspirin", "ibuprofen", "metformin", "lisinopril", "atorvastatin",
	"simvastatin", "amlodipine", "losartan", "omeprazole", "gabapentin",
	"hydrochlorothiazide", "metoprolol", "albuterol", "atenolol", "montelukast",
	"fluticasone", "sertraline", "escitalopram", "levothyroxine", "fluoxetine",
	"citalopram", "rosuvastatin", "pantoprazole", "lansoprazole", "duloxetine",
	"venlafaxine", "tramadol", "oxycodone", "lorazepam", "alprazolam",
	"zolpidem", "furosemide", "clopidogrel", "glipizide", "sitagliptin",
	"liraglutide", "semaglutide", "januvia", "ozempic", "warfarin", "apixaban",
	"rivaroxaban", "dabigatran", "sildenafil", "tadalafil", "cetirizine",
	"loratadine", "fexofenadine", "symbicort", "advair", "trelegy", "ezetimibe",
	"fenofibrate", "empagliflozin", "jardiance", "insulin", "dapagliflozin",
	"prednisone", "testosterone", "estradiol", "norethindrone",
	"medroxyprogesterone", "diclofenac", "naproxen", "allopurinol",
	"amoxicillin", "azithromycin", "ciprofloxacin", "doxycycline",
	"sumatriptan", "rizatriptan", "levetiracetam", "valproic acid",
	"lamotrigine", "quetiapine", "aripiprazole", "risperidone", "olanzapine",
	"lurasidone", "memantine", "donepezil", "dutasteride", "finasteride",
	"tamsulosin", "cyclobenzaprine", "methocarbamol", "carvedilol", "digoxin",
	"spironolactone", "valsartan", "celecoxib", "meloxicam", "adalimumab",
	"etanercept", "ustekinumab", "secukinumab", "guselkumab", "famotidine",
	"ranitidine",
}

// CommonWords excludes frequent English words from the capitalized-word
// fallback when hunting for medication-like names.
var CommonWords = []string{
	"the", "and", "for", "with", "that", "have", "this", "from", "they",
	"will", "would", "there", "their", "what", "about", "which", "when",
	"make", "like", "time", "just", "know", "people", "year", "good", "some",
	"could", "them", "other", "than", "then", "now", "into", "only", "your",
	"very",
}

// AlternativeStopWords excludes frequent title-cased words when scanning for
// supplement or lifestyle treatment names.
var AlternativeStopWords = []string{
	"The", "And", "For", "With", "That", "This", "From", "They", "Will",
	"What", "About", "Which", "When", "Their", "Have", "Been", "Were",
	"Being", "More", "Most", "Some", "Such", "Many",
}

// IsCommonWord reports whether the lower-cased word is in CommonWords.
func IsCommonWord(word string) bool {
	lower := strings.ToLower(word)
	for _, w := range CommonWords {
		if w == lower {
			return true
		}
	}
	return false
}

// IsAlternativeStopWord reports whether word appears in AlternativeStopWords.
func IsAlternativeStopWord(word string) bool {
	for _, w := range AlternativeStopWords {
		if w == word {
			return true
		}
	}
	return false
}

// DefaultPair is a per-condition pair of default treatment names.
type DefaultPair struct {
	First  string
	Second string
}

// defaultStandard maps lower-cased condition names (including common aliases)
// to the default first-line medication pair used when search yields nothing.
var defaultStandard = map[string]DefaultPair{
	"type 2 diabetes":     {"Metformin", "Glipizide"},
	"diabetes":            {"Metformin", "Glipizide"},
	"hypertension":        {"Lisinopril", "Amlodipine"},
	"high blood pressure": {"Lisinopril", "Amlodipine"},
	"hyperlipidemia":      {"Atorvastatin", "Rosuvastatin"},
	"high cholesterol":    {"Atorvastatin", "Rosuvastatin"},
	"gerd":                {"Omeprazole", "Famotidine"},
	"acid reflux":         {"Omeprazole", "Famotidine"},
	"sleep apnea":         {"CPAP Therapy", "Modafinil"},
	"osteoarthritis":      {"Acetaminophen", "Meloxicam"},
	"arthritis":           {"Acetaminophen", "Meloxicam"},
}

// defaultAlternative maps lower-cased condition names to the default
// non-pharmaceutical pair.
var defaultAlternative = map[string]DefaultPair{
	"type 2 diabetes":     {"Cinnamon", "Chromium"},
	"diabetes":            {"Cinnamon", "Chromium"},
	"hypertension":        {"Potassium", "CoQ10"},
	"high blood pressure": {"Potassium", "CoQ10"},
	"hyperlipidemia":      {"Fish Oil", "Plant Sterols"},
	"high cholesterol":    {"Fish Oil", "Plant Sterols"},
	"gerd":                {"Ginger", "Probiotics"},
	"acid reflux":         {"Ginger", "Probiotics"},
	"sleep apnea":         {"Weight Loss", "Positional Therapy"},
	"osteoarthritis":      {"Glucosamine", "Turmeric"},
	"arthritis":           {"Glucosamine", "Turmeric"},
}

// DefaultStandardPair returns the default medication pair for a condition.
// Unknown conditions get generic placeholders so the pipeline always has
// exactly two standard options to work with.
func DefaultStandardPair(condition string) DefaultPair {
	if pair, ok := defaultStandard[strings.ToLower(condition)]; ok {
		return pair
	}
	return DefaultPair{"Medication 1", "Medication 2"}
}

// DefaultAlternativePair returns the default alternative pair for a condition.
func DefaultAlternativePair(condition string) DefaultPair {
	if pair, ok := defaultAlternative[strings.ToLower(condition)]; ok {
		return pair
	}
	return DefaultPair{"Supplement", "Lifestyle Change"}
}

// FallbackEntry is the hard fallback used when aggregation for a condition
// fails entirely: one standard and one alternative treatment with fixed prices.
type FallbackEntry struct {
	StandardName     string
	AlternativeName  string
	StandardPrice    string
	AlternativePrice string
}

var fallbackEntries = map[string]FallbackEntry{
	"type 2 diabetes":     {"Metformin", "Cinnamon Supplements", "$4-$25", "$15-$35"},
	"diabetes":            {"Metformin", "Cinnamon Supplements", "$4-$25", "$15-$35"},
	"hypertension":        {"Lisinopril", "Potassium Supplements", "$8-$30", "$10-$40"},
	"high blood pressure": {"Lisinopril", "Potassium Supplements", "$8-$30", "$10-$40"},
	"hyperlipidemia":      {"Atorvastatin", "Fish Oil", "$12-$75", "$15-$45"},
	"high cholesterol":    {"Atorvastatin", "Fish Oil", "$12-$75", "$15-$45"},
	"gerd":                {"Omeprazole", "Ginger Extract", "$10-$35", "$12-$30"},
	"acid reflux":         {"Omeprazole", "Ginger Extract", "$10-$35", "$12-$30"},
	"sleep apnea":         {"CPAP Therapy", "Positional Therapy", "$500-$1200", "$80-$200"},
	"osteoarthritis":      {"Acetaminophen", "Glucosamine", "$5-$25", "$20-$60"},
	"arthritis":           {"Acetaminophen", "Glucosamine", "$5-$25", "$20-$60"},
}

// Fallback returns the hard fallback entry for a condition. Conditions outside
// the table get generic names with the generic price ranges.
func Fallback(condition string) FallbackEntry {
	if entry, ok := fallbackEntries[strings.ToLower(condition)]; ok {
		return entry
	}
	return FallbackEntry{
		StandardName:     "Medication for " + condition,
		AlternativeName:  "Alternative for " + condition,
		StandardPrice:    "$15-$60",
		AlternativePrice: "$20-$45",
	}
}

// MedicalDomains is the allow-list used when picking an informational link out
// of search-result text. URLs containing any of these fragments win over
// arbitrary URLs.
var MedicalDomains = []string{
	"nih.gov", "mayo", "webmd", "medline", "drugs.com", "rxlist", "medscape",
	"health",
}
