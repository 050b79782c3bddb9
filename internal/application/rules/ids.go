package rules

// Canonical catalog ids referenced by the default rule set and protocols.
// The seed data creates entries under the same ids.
const (
	IDAshwagandha  = "ashwagandha"
	IDBComplex     = "b-complex"
	IDB12          = "vitamin-b12"
	IDBerberine    = "berberine"
	IDCoQ10        = "coq10"
	IDCreatine     = "creatine"
	IDGinkgo       = "ginkgo-biloba"
	IDIron         = "iron-bisglycinate"
	IDLTheanine    = "l-theanine"
	IDMagnesium    = "magnesium-glycinate"
	IDMagnesiumCit = "magnesium-citrate"
	IDMelatonin    = "melatonin"
	IDOmega3       = "omega-3"
	IDResveratrol  = "resveratrol"
	IDRhodiola     = "rhodiola-rosea"
	IDTurmeric     = "turmeric-curcumin"
	IDVitaminC     = "vitamin-c"
	IDVitaminD3    = "vitamin-d3"
	IDZinc         = "zinc-picolinate"
	IDNAC          = "nac"
)
