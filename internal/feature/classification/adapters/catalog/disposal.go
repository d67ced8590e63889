package catalog

import "smartbin/internal/feature/classification/domain/entity"

var disposalGuides = map[string]entity.DisposalGuide{
	"Plastic": {
		Category: "Recyclable Plastic",
		Instructions: []string{
			"Clean and rinse the plastic item",
			"Check recycling number on bottom (1-7)",
			"Place in blue recycling bin",
			"Remove caps and labels when possible",
		},
		Tips: []string{
			"Avoid single-use plastics when possible",
			"Reuse plastic containers when safe",
			"Plastic bags should be recycled separately",
			"Flatten bottles to save space",
		},
		RecyclingInfo: "Most plastics are recyclable but check local guidelines",
		Decomposition: "450+ years to decompose",
		Examples:      "Water bottles, food containers, plastic bags, packaging",
	},
	"Glass": {
		Category: "Recyclable Glass",
		Instructions: []string{
			"Rinse glass containers thoroughly",
			"Remove metal or plastic lids",
			"Place in glass recycling bin",
			"Do not mix with regular trash",
		},
		Tips: []string{
			"Glass is 100% recyclable indefinitely",
			"Broken glass should be wrapped in paper",
			"Different colored glass may be separated",
			"Consider reusing glass jars",
		},
		RecyclingInfo: "Glass can be recycled endlessly without quality loss",
		Decomposition: "1 million years to decompose",
		Examples:      "Wine bottles, jars, glass containers, broken glass",
	},
	"Metal": {
		Category: "Recyclable Metal",
		Instructions: []string{
			"Clean metal cans and containers",
			"Remove any food residue",
			"Place in metal recycling bin",
			"Separate aluminum and steel if required",
		},
		Tips: []string{
			"Aluminum cans are highly valuable to recycle",
			"Scrap metal can often be sold",
			"Flatten cans to save space",
			"Check for local metal recycling centers",
		},
		RecyclingInfo: "Metals are highly recyclable and energy-efficient",
		Decomposition: "50-500 years to decompose",
		Examples:      "Aluminum cans, steel cans, foil, metal containers",
	},
	"Paper": {
		Category: "Recyclable Paper",
		Instructions: []string{
			"Keep paper dry and clean",
			"Remove any plastic windows",
			"Flatten cardboard boxes",
			"Place in paper recycling bin",
		},
		Tips: []string{
			"Shredded paper may have special handling",
			"Greasy pizza boxes may not be recyclable",
			"Reuse paper before recycling",
			"Use both sides when printing",
		},
		RecyclingInfo: "Paper can typically be recycled 5-7 times",
		Decomposition: "2-6 weeks to decompose",
		Examples:      "Newspaper, office paper, magazines, cardboard",
	},
	"Cardboard": {
		Category: "Recyclable Cardboard",
		Instructions: []string{
			"Flatten all cardboard boxes",
			"Remove tape and labels",
			"Keep dry and clean",
			"Place in cardboard recycling",
		},
		Tips: []string{
			"Corrugated cardboard is highly recyclable",
			"Wet cardboard should be thrown away",
			"Reuse boxes for storage or shipping",
			"Break down large boxes",
		},
		RecyclingInfo: "Cardboard fibers can be recycled multiple times",
		Decomposition: "2 months to decompose",
		Examples:      "Shipping boxes, cereal boxes, packaging cardboard",
	},
	"Organic/Food": {
		Category: "Compostable Organic",
		Instructions: []string{
			"Place in green compost bin",
			"Use for home composting",
			"Can be buried in garden",
			"Avoid meat and dairy in home compost",
		},
		Tips: []string{
			"Chop into smaller pieces for faster decomposition",
			"Mix with dry leaves or paper",
			"Turn compost regularly",
			"Keep compost moist but not wet",
		},
		RecyclingInfo: "Excellent for creating nutrient-rich soil",
		Decomposition: "2-8 weeks to decompose",
		Examples:      "Fruit peels, vegetable scraps, coffee grounds, eggshells",
	},
	"Fruit/Veg": {
		Category: "Compostable Food Scraps",
		Instructions: []string{
			"Ideal for composting",
			"Place in food waste bin",
			"Can be used as fertilizer",
			"Great for worm farms",
		},
		Tips: []string{
			"Citrus peels decompose slower",
			"Avoid composting diseased plants",
			"Balance with brown materials",
			"Freeze scraps if composting later",
		},
		RecyclingInfo: "Creates excellent natural fertilizer",
		Decomposition: "1-4 weeks to decompose",
		Examples:      "Banana peels, apple cores, carrot tops, lettuce leaves",
	},
	"Textile": {
		Category: "Textile Waste",
		Instructions: []string{
			"Donate if in good condition",
			"Check for textile recycling bins",
			"Repurpose as cleaning rags",
			"Dispose in general waste if damaged",
		},
		Tips: []string{
			"Many charities accept clothing donations",
			"Some retailers offer recycling programs",
			"Consider upcycling projects",
			"Separate natural and synthetic fibers",
		},
		RecyclingInfo: "Only 15% of textiles are currently recycled",
		Decomposition: "40-200 years to decompose",
		Examples:      "Clothing, towels, bedsheets, fabrics",
	},
	"E-waste": {
		Category: "Electronic Waste",
		Instructions: []string{
			"Do NOT throw in regular trash",
			"Find e-waste recycling center",
			"Remove batteries if possible",
			"Check for manufacturer take-back",
		},
		Tips: []string{
			"Many electronics contain valuable metals",
			"Some stores accept old electronics",
			"Wipe data from devices before recycling",
			"Consider repair before replacement",
		},
		RecyclingInfo: "E-waste contains toxic materials and valuable resources",
		Decomposition: "Thousands of years for some components",
		Examples:      "Phones, laptops, batteries, cables, chargers",
	},
	"Other": {
		Category: "General Waste",
		Instructions: []string{
			"Check local waste disposal guidelines",
			"When in doubt, contact local authorities",
			"Dispose in appropriate waste bin",
			"Follow community recycling rules",
		},
		Tips: []string{
			"Reduce consumption when possible",
			"Reuse items before disposal",
			"Recycle whenever feasible",
			"Stay informed about waste management",
		},
		RecyclingInfo: "Check specific guidelines for this material",
		Decomposition: "Varies by material",
		Examples:      "Mixed materials, unknown items, composite waste",
	},
}

var defaultGuide = entity.DisposalGuide{
	Category:      "General Waste",
	Instructions:  []string{"Check local waste disposal guidelines", "When in doubt, contact local authorities"},
	Tips:          []string{"Reduce consumption when possible", "Reuse items before disposal", "Recycle whenever feasible"},
	RecyclingInfo: "Check specific guidelines for this material",
	Decomposition: "Varies by material",
	Examples:      "Various waste materials",
}

// DisposalFor はカテゴリ名に対応する廃棄ガイドを返します。
// 未知のカテゴリには一般廃棄物のガイドを返します。
func DisposalFor(name string) *entity.DisposalGuide {
	g, ok := disposalGuides[name]
	if !ok {
		g = defaultGuide
	}
	return cloneGuide(g)
}

func cloneGuide(g entity.DisposalGuide) *entity.DisposalGuide {
	g.Instructions = append([]string(nil), g.Instructions...)
	g.Tips = append([]string(nil), g.Tips...)
	return &g
}
