package output

// DefaultAssumptions lists the valuation conventions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Espérance de vie: tables INSEE par âge et sexe, ajustées selon la pathologie déclarée",
	"Couple: bonus de 10 % par occupant, durée fondée sur le dernier survivant",
	"Droit d'usage et d'habitation: barème par âge de l'occupant le plus jeune",
	"Frais de notaire: 8 % de la valeur de la nue-propriété",
	"Achat direct: prix déclaré plus 8 % de frais de notaire",
	"Montants non actualisés, taxe foncière constante",
}
