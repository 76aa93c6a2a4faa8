package packs

// Default returns the built-in pack catalog in generation order. Each call
// returns a fresh slice.
func Default() []PageConfig {
	return []PageConfig{
		{
			Filename:          "pack-blueberry.html",
			Title:             "Blueberry Protein Muffins Pack | Berry Recipes",
			Description:       "The Blueberry Bundle: 4 berry protein muffin recipes including classic blueberry, lemon blueberry, and more.",
			PDF:               "guides/pack-blueberry.pdf",
			SuccessPage:       "success__blueberry_pack_delivery.html",
			PackName:          "Blueberry Pack",
			HeroTitle:         "THE BLUEBERRY",
			HeroSubtitle:      "BUNDLE",
			HeroTagline:       "FLAVOR PACK",
			HeroDescription:   "4 berry variations. <span class=\"text-white font-bold\">Fresh, frozen, or freeze-dried</span>—we've got you covered.",
			AccentColor:       "indigo",
			Checklist:         []string{"4 Tested Blueberry Recipes", "Fresh vs Frozen Guide", "14-22g Protein Per Muffin"},
			PDFMockupTitle:    "BLUEBERRY BUNDLE",
			PDFMockupSubtitle: "4 Recipes + Berry Guide",
			PDFBadge:          "4",
			PDFBadgeLabel:     "Recipes",
			Features: []Feature{
				{Icon: "🫐", Title: "4 BERRY RECIPES", Desc: "Classic, lemon blueberry, yogurt berry, and no-powder—all packed with antioxidants and protein."},
				{Icon: "check", Title: "BERRY TYPE GUIDE", Desc: "Fresh vs frozen vs freeze-dried—know which works best for each recipe."},
				{Icon: "bolt", Title: "ANTI-SINK TIPS", Desc: "How to keep berries evenly distributed instead of sinking to the bottom."},
			},
			Recipes: []Recipe{
				{Emoji: "🫐", Name: "CLASSIC", Protein: "19g", Desc: "Fresh or frozen berries"},
				{Emoji: "🍋🫐", Name: "LEMON BERRY", Protein: "18g", Desc: "Bright, zesty flavor"},
				{Emoji: "🥛🫐", Name: "YOGURT BERRY", Protein: "22g", Desc: "Extra creamy texture"},
				{Emoji: "💜🫐", Name: "NO POWDER", Protein: "14g", Desc: "Whole food only"},
			},
			GuideTitle: "FRESH VS FROZEN",
			GuideCards: []GuideCard{
				{Emoji: "🧊", Title: "FROZEN (Recommended)", Desc: "Cheaper, available year-round, less bleed into batter. Fold in frozen—don't thaw!"},
				{Emoji: "🫐", Title: "FRESH", Desc: "Best in summer. Coat with 1 tsp flour before folding to prevent sinking."},
			},
			FinalCTA:    "BERRY GOOD 🫐",
			FinalBgText: "BERRY",
			Image:       "recipe_images/blueberry-protein-muffins.png",
			MobileCTA:   "GET BLUEBERRY BUNDLE",
		},
		{
			Filename:          "pack-chocolate.html",
			Title:             "Chocolate Protein Muffins Pack | Double Chocolate Recipes",
			Description:       "The Chocolate Collection: chocolate base, double chocolate, and chocolate yogurt muffin recipes.",
			PDF:               "guides/pack-chocolate.pdf",
			SuccessPage:       "success__chocolate_pack_delivery.html",
			PackName:          "Chocolate Pack",
			HeroTitle:         "THE CHOCOLATE",
			HeroSubtitle:      "COLLECTION",
			HeroTagline:       "INDULGENT PACK",
			HeroDescription:   "Rich, decadent, high-protein. <span class=\"text-white font-bold\">4 chocolate recipes</span> from classic to triple fudge.",
			AccentColor:       "amber",
			Checklist:         []string{"4 Tested Chocolate Recipes", "Cocoa Type Guide", "20-26g Protein Per Muffin"},
			PDFMockupTitle:    "CHOCOLATE PACK",
			PDFMockupSubtitle: "4 Recipes + Cocoa Guide",
			PDFBadge:          "4",
			PDFBadgeLabel:     "Recipes",
			Features: []Feature{
				{Icon: "🍫", Title: "4 CHOCOLATE RECIPES", Desc: "Classic, double choc, choc yogurt, and choc PB—satisfy your cravings with protein."},
				{Icon: "check", Title: "COCOA TYPE GUIDE", Desc: "Dutch process vs natural vs cacao—know which works best for rich flavor."},
				{Icon: "bolt", Title: "TEXTURE TIPS", Desc: "How to get fudgy vs cakey texture depending on your preference."},
			},
			Recipes: []Recipe{
				{Emoji: "🍫", Name: "CLASSIC", Protein: "20g", Desc: "Cocoa base recipe"},
				{Emoji: "🍫🍫", Name: "DOUBLE CHOC", Protein: "24g", Desc: "Cocoa + chocolate protein"},
				{Emoji: "🥛🍫", Name: "CHOC YOGURT", Protein: "22g", Desc: "Extra fudgy texture"},
				{Emoji: "🍫🥜", Name: "CHOC PB", Protein: "26g", Desc: "Peanut butter swirl"},
			},
			GuideTitle: "COCOA MATTERS",
			GuideCards: []GuideCard{
				{Emoji: "🟤", Title: "DUTCH PROCESS", Desc: "Richer, darker, less bitter. Recommended for muffins."},
				{Emoji: "🍫", Title: "NATURAL", Desc: "More acidic, works with baking soda. Classic flavor."},
				{Emoji: "🌿", Title: "CACAO", Desc: "Raw, bitter. Add more sweetener if using."},
			},
			FinalCTA:    "CHOCOLATE HEAVEN 🍫",
			FinalBgText: "CHOCO",
			Image:       "recipe_images/double-choc-protein-muffins.png",
			MobileCTA:   "GET CHOCOLATE PACK",
		},
		{
			Filename:          "pack-pumpkin.html",
			Title:             "Pumpkin Protein Muffins Pack | Seasonal Recipes",
			Description:       "The Pumpkin Spice Pack: 4 pumpkin protein muffin recipes perfect for fall.",
			PDF:               "guides/pack-pumpkin.pdf",
			SuccessPage:       "success__pumpkin_pack_delivery.html",
			PackName:          "Pumpkin Pack",
			HeroTitle:         "PUMPKIN",
			HeroSubtitle:      "SPICE PACK",
			HeroTagline:       "SEASONAL FAVORITE",
			HeroDescription:   "Fall's favorite flavor meets protein. <span class=\"text-white font-bold\">4 variations</span> from classic to chocolate pumpkin.",
			AccentColor:       "orange",
			Checklist:         []string{"4 Tested Pumpkin Recipes", "Canned vs Fresh Guide", "20-22g Protein Per Muffin"},
			PDFMockupTitle:    "PUMPKIN PACK",
			PDFMockupSubtitle: "4 Recipes + Prep Guide",
			PDFBadge:          "4",
			PDFBadgeLabel:     "Recipes",
			Features: []Feature{
				{Icon: "🎃", Title: "4 PUMPKIN RECIPES", Desc: "Classic, spiced, choc pumpkin, and cream cheese—perfect for fall baking."},
				{Icon: "check", Title: "PUMPKIN PREP GUIDE", Desc: "Canned vs fresh—know which works best and how to prep each."},
				{Icon: "bolt", Title: "SPICE BLEND", Desc: "The perfect pumpkin spice ratio for maximum fall flavor."},
			},
			Recipes: []Recipe{
				{Emoji: "🎃", Name: "CLASSIC", Protein: "20g", Desc: "Pure pumpkin flavor"},
				{Emoji: "🎃✨", Name: "SPICED", Protein: "20g", Desc: "Cinnamon, nutmeg, ginger"},
				{Emoji: "🍫🎃", Name: "CHOC PUMPKIN", Protein: "22g", Desc: "Cocoa + pumpkin combo"},
				{Emoji: "🧀🎃", Name: "CREAM CHEESE", Protein: "21g", Desc: "With protein frosting"},
			},
			GuideTitle: "CANNED VS FRESH",
			GuideCards: []GuideCard{
				{Emoji: "🥫", Title: "CANNED (Recommended)", Desc: "More consistent, less water. Use 100% pure pumpkin, NOT pie filling!"},
				{Emoji: "🎃", Title: "FRESH", Desc: "Roast, puree, and strain excess water first. More work but tastes amazing."},
			},
			FinalCTA:    "IT'S PUMPKIN SEASON 🎃",
			FinalBgText: "PUMPKIN",
			Image:       "recipe_images/apple-spiced-protein-muffins.png",
			MobileCTA:   "GET PUMPKIN PACK",
		},
		{
			Filename:          "pack-chocolate-chip.html",
			Title:             "Chocolate Chip Protein Muffins Pack | Classic Recipes",
			Description:       "The Chocolate Chip Pack: 4 chocolate chip protein muffin recipes with perfect chip distribution.",
			PDF:               "guides/pack-chocolate-chip.pdf",
			SuccessPage:       "success__chocolate_chip_pack_delivery.html",
			PackName:          "Chocolate Chip Pack",
			HeroTitle:         "CHOCOLATE CHIP",
			HeroSubtitle:      "PACK",
			HeroTagline:       "CLASSIC FAVORITE",
			HeroDescription:   "The perfect chip-to-muffin ratio. <span class=\"text-white font-bold\">4 chocolate chip variations</span> for every taste.",
			AccentColor:       "amber",
			Checklist:         []string{"4 Tested Choc Chip Recipes", "Chip Distribution Guide", "18-22g Protein Per Muffin"},
			PDFMockupTitle:    "CHOC CHIP PACK",
			PDFMockupSubtitle: "4 Recipes + Chip Guide",
			PDFBadge:          "4",
			PDFBadgeLabel:     "Recipes",
			Features: []Feature{
				{Icon: "🍪", Title: "4 CHOC CHIP RECIPES", Desc: "Classic, double chip, banana chip, and mini chip—all with perfect distribution."},
				{Icon: "check", Title: "CHIP GUIDE", Desc: "Mini vs regular vs chunks—which works best for each recipe."},
				{Icon: "bolt", Title: "MELT-PROOF TIPS", Desc: "How to keep chips intact and evenly distributed."},
			},
			Recipes: []Recipe{
				{Emoji: "🍪", Name: "CLASSIC", Protein: "19g", Desc: "Perfect chip ratio"},
				{Emoji: "🍪🍪", Name: "DOUBLE CHIP", Protein: "20g", Desc: "Extra chocolate chips"},
				{Emoji: "🍌🍪", Name: "BANANA CHIP", Protein: "19g", Desc: "Banana + chocolate combo"},
				{Emoji: "✨🍪", Name: "MINI CHIP", Protein: "18g", Desc: "Mini chips throughout"},
			},
			GuideTitle: "CHIP SIZES",
			GuideCards: []GuideCard{
				{Emoji: "⚫", Title: "MINI CHIPS", Desc: "Best distribution, less sinking. Perfect for uniform texture."},
				{Emoji: "🍫", Title: "REGULAR CHIPS", Desc: "Classic size. Fold in gently to prevent breaking."},
			},
			FinalCTA:    "CHIP CHIP HOORAY 🍪",
			FinalBgText: "CHIPS",
			Image:       "recipe_images/choc-chip-protein-muffins.png",
			MobileCTA:   "GET CHOC CHIP PACK",
		},
		{
			Filename:          "pack-cottage-cheese.html",
			Title:             "Cottage Cheese Protein Muffins Pack | High Protein Recipes",
			Description:       "The Cottage Cheese Pack: 4 ultra-high protein muffin recipes using cottage cheese as a protein base.",
			PDF:               "guides/pack-cottage-cheese.pdf",
			SuccessPage:       "success__cottage_cheese_pack_delivery.html",
			PackName:          "Cottage Cheese Pack",
			HeroTitle:         "COTTAGE CHEESE",
			HeroSubtitle:      "PACK",
			HeroTagline:       "HIGH PROTEIN",
			HeroDescription:   "The secret ingredient for ultra-high protein. <span class=\"text-white font-bold\">4 cottage cheese recipes</span> with incredible texture.",
			AccentColor:       "emerald",
			Checklist:         []string{"4 Tested Cottage Cheese Recipes", "Blending Guide", "22-28g Protein Per Muffin"},
			PDFMockupTitle:    "COTTAGE PACK",
			PDFMockupSubtitle: "4 Recipes + Blending Guide",
			PDFBadge:          "28g",
			PDFBadgeLabel:     "Protein",
			Features: []Feature{
				{Icon: "🧀", Title: "4 COTTAGE RECIPES", Desc: "Classic, blueberry, banana, and savory—all with 22-28g protein per muffin."},
				{Icon: "check", Title: "BLENDING GUIDE", Desc: "How to blend cottage cheese smooth for invisible texture."},
				{Icon: "bolt", Title: "TEXTURE TIPS", Desc: "The secret to fluffy, not dense, cottage cheese muffins."},
			},
			Recipes: []Recipe{
				{Emoji: "🧀", Name: "CLASSIC", Protein: "24g", Desc: "Pure cottage cheese base"},
				{Emoji: "🫐🧀", Name: "BLUEBERRY", Protein: "25g", Desc: "Berry + cottage combo"},
				{Emoji: "🍌🧀", Name: "BANANA", Protein: "26g", Desc: "Banana + cottage combo"},
				{Emoji: "🧀✨", Name: "ULTRA HIGH", Protein: "28g", Desc: "Maximum protein density"},
			},
			GuideTitle: "BLENDING MATTERS",
			GuideCards: []GuideCard{
				{Emoji: "🔄", Title: "BLEND SMOOTH", Desc: "Blend cottage cheese until completely smooth—no lumps. This is the secret to invisible texture."},
				{Emoji: "🧀", Title: "CHOOSE RIGHT", Desc: "Use full-fat or 2% for best texture. Fat-free can be gummy."},
			},
			FinalCTA:    "MAX PROTEIN 🧀",
			FinalBgText: "PROTEIN",
			Image:       "recipe_images/cottage-cheese-protein-muffins.png",
			MobileCTA:   "GET COTTAGE PACK",
		},
		{
			Filename:          "pack-greek-yogurt.html",
			Title:             "Greek Yogurt Protein Muffins Pack | Creamy Recipes",
			Description:       "The Greek Yogurt Pack: 4 extra-moist protein muffin recipes using Greek yogurt as a base.",
			PDF:               "guides/pack-greek-yogurt.pdf",
			SuccessPage:       "success__greek_yogurt_pack_delivery.html",
			PackName:          "Greek Yogurt Pack",
			HeroTitle:         "GREEK YOGURT",
			HeroSubtitle:      "PACK",
			HeroTagline:       "EXTRA MOIST",
			HeroDescription:   "The secret to extra-moist muffins. <span class=\"text-white font-bold\">4 Greek yogurt recipes</span> with incredible texture.",
			AccentColor:       "sky",
			Checklist:         []string{"4 Tested Greek Yogurt Recipes", "Yogurt Selection Guide", "20-24g Protein Per Muffin"},
			PDFMockupTitle:    "YOGURT PACK",
			PDFMockupSubtitle: "4 Recipes + Yogurt Guide",
			PDFBadge:          "4",
			PDFBadgeLabel:     "Recipes",
			Features: []Feature{
				{Icon: "🥛", Title: "4 YOGURT RECIPES", Desc: "Classic, berry, vanilla, and honey—all with extra-moist texture."},
				{Icon: "check", Title: "YOGURT GUIDE", Desc: "Full-fat vs 0%—which works best for each recipe and why."},
				{Icon: "bolt", Title: "MOISTURE TIPS", Desc: "How to get perfectly moist (not soggy) muffins every time."},
			},
			Recipes: []Recipe{
				{Emoji: "🥛", Name: "CLASSIC", Protein: "22g", Desc: "Pure yogurt base"},
				{Emoji: "🫐🥛", Name: "BERRY", Protein: "21g", Desc: "Berry + yogurt combo"},
				{Emoji: "🍦🥛", Name: "VANILLA", Protein: "20g", Desc: "Vanilla bean flavor"},
				{Emoji: "🍯🥛", Name: "HONEY", Protein: "21g", Desc: "Natural honey sweetness"},
			},
			GuideTitle: "YOGURT SELECTION",
			GuideCards: []GuideCard{
				{Emoji: "🥛", Title: "FULL-FAT (Recommended)", Desc: "Best flavor and texture. More protein per serving too."},
				{Emoji: "💧", Title: "0% FAT", Desc: "Lower calorie but can be tangier. Add a bit more sweetener."},
			},
			FinalCTA:    "YOGURT POWER 🥛",
			FinalBgText: "YOGURT",
			Image:       "recipe_images/greek-yogurt-protein-muffins.png",
			MobileCTA:   "GET YOGURT PACK",
		},
		{
			Filename:          "pack-veggie.html",
			Title:             "Veggie Protein Muffins Pack | Vegetable-Based Recipes",
			Description:       "The Veggie Pack: 4 vegetable-based protein muffin recipes including zucchini, carrot, and more.",
			PDF:               "guides/pack-veggie.pdf",
			SuccessPage:       "success__veggie_pack_delivery.html",
			PackName:          "Veggie Pack",
			HeroTitle:         "THE VEGGIE",
			HeroSubtitle:      "PACK",
			HeroTagline:       "HIDDEN VEGGIES",
			HeroDescription:   "Sneak in your veggies! <span class=\"text-white font-bold\">4 vegetable-based recipes</span> that taste like dessert.",
			AccentColor:       "green",
			Checklist:         []string{"4 Tested Veggie Recipes", "Veggie Prep Guide", "18-21g Protein Per Muffin"},
			PDFMockupTitle:    "VEGGIE PACK",
			PDFMockupSubtitle: "4 Recipes + Prep Guide",
			PDFBadge:          "4",
			PDFBadgeLabel:     "Recipes",
			Features: []Feature{
				{Icon: "🥕", Title: "4 VEGGIE RECIPES", Desc: "Zucchini, carrot cake, sweet potato, and spinach—veggies that taste like dessert."},
				{Icon: "check", Title: "VEGGIE PREP GUIDE", Desc: "How to prep each vegetable for best muffin texture."},
				{Icon: "bolt", Title: "MOISTURE TIPS", Desc: "How to squeeze excess water from zucchini and other veggies."},
			},
			Recipes: []Recipe{
				{Emoji: "🥒", Name: "ZUCCHINI", Protein: "19g", Desc: "Hidden veggie classic"},
				{Emoji: "🥕", Name: "CARROT CAKE", Protein: "20g", Desc: "Spiced carrot flavor"},
				{Emoji: "🍠", Name: "SWEET POTATO", Protein: "18g", Desc: "Natural sweetness"},
				{Emoji: "🥬", Name: "SPINACH", Protein: "21g", Desc: "Green power boost"},
			},
			GuideTitle: "VEGGIE PREP",
			GuideCards: []GuideCard{
				{Emoji: "💧", Title: "SQUEEZE THE WATER", Desc: "Zucchini and spinach release water. Squeeze them dry before adding to batter."},
				{Emoji: "🥕", Title: "SHRED FINE", Desc: "Fine shreds disappear into the batter. Chunky pieces are detectable."},
			},
			FinalCTA:    "EAT YOUR VEGGIES 🥕",
			FinalBgText: "VEGGIE",
			Image:       "recipe_images/zucchini-protein-muffins.png",
			MobileCTA:   "GET VEGGIE PACK",
		},
	}
}
