// Package seed holds the reference catalog and demo content loaded into a
// fresh store.
package seed

import catalog "github.com/ecap-org/ecap-directory/internal/catalog/domain"

var Countries = []catalog.CountryFields{
	{Slug: "saudi-arabia", NameEn: "Saudi Arabia", NameAr: "المملكة العربية السعودية", NameFr: "Arabie saoudite"},
	{Slug: "uae", NameEn: "United Arab Emirates", NameAr: "الإمارات العربية المتحدة", NameFr: "Émirats arabes unis"},
	{Slug: "egypt", NameEn: "Egypt", NameAr: "مصر", NameFr: "Égypte"},
	{Slug: "jordan", NameEn: "Jordan", NameAr: "الأردن", NameFr: "Jordanie"},
	{Slug: "kuwait", NameEn: "Kuwait", NameAr: "الكويت", NameFr: "Koweït"},
	{Slug: "qatar", NameEn: "Qatar", NameAr: "قطر", NameFr: "Qatar"},
	{Slug: "bahrain", NameEn: "Bahrain", NameAr: "البحرين", NameFr: "Bahreïn"},
	{Slug: "oman", NameEn: "Oman", NameAr: "عُمان", NameFr: "Oman"},
	{Slug: "lebanon", NameEn: "Lebanon", NameAr: "لبنان", NameFr: "Liban"},
	{Slug: "morocco", NameEn: "Morocco", NameAr: "المغرب", NameFr: "Maroc"},
	{Slug: "tunisia", NameEn: "Tunisia", NameAr: "تونس", NameFr: "Tunisie"},
	{Slug: "iraq", NameEn: "Iraq", NameAr: "العراق", NameFr: "Irak"},
	{Slug: "algeria", NameEn: "Algeria", NameAr: "الجزائر", NameFr: "Algérie"},
	{Slug: "libya", NameEn: "Libya", NameAr: "ليبيا", NameFr: "Libye"},
	{Slug: "sudan", NameEn: "Sudan", NameAr: "السودان", NameFr: "Soudan"},
	{Slug: "palestine", NameEn: "Palestine", NameAr: "فلسطين", NameFr: "Palestine"},
	{Slug: "syria", NameEn: "Syria", NameAr: "سوريا", NameFr: "Syrie"},
	{Slug: "yemen", NameEn: "Yemen", NameAr: "اليمن", NameFr: "Yémen"},
	{Slug: "other", NameEn: "Other", NameAr: "أخرى", NameFr: "Autre"},
}

var Industries = []catalog.IndustryFields{
	{Slug: "fashion", NameEn: "Fashion", NameAr: "الأزياء", NameFr: "Mode", Color: "purple"},
	{Slug: "home-living", NameEn: "Home & Living", NameAr: "المنزل والمعيشة", NameFr: "Maison & Déco", Color: "amber"},
	{Slug: "electronics", NameEn: "Electronics", NameAr: "الإلكترونيات", NameFr: "Électronique", Color: "blue"},
	{Slug: "fmcg", NameEn: "FMCG", NameAr: "السلع الاستهلاكية", NameFr: "Grande consommation", Color: "teal"},
	{Slug: "gifting-flowers", NameEn: "Gifting & Flowers", NameAr: "الهدايا والزهور", NameFr: "Cadeaux & Fleurs", Color: "pink"},
	{Slug: "sports-wellness", NameEn: "Sports & Wellness", NameAr: "الرياضة والعافية", NameFr: "Sport & Bien-être", Color: "green"},
	{Slug: "food-beverage", NameEn: "Food & Beverage", NameAr: "الأغذية والمشروبات", NameFr: "Alimentation & Boissons", Color: "orange"},
	{Slug: "beauty-cosmetics", NameEn: "Beauty & Cosmetics", NameAr: "التجميل ومستحضرات التجميل", NameFr: "Beauté & Cosmétiques", Color: "rose"},
	{Slug: "health-pharma", NameEn: "Health & Pharma", NameAr: "الصحة والأدوية", NameFr: "Santé & Pharmacie", Color: "red"},
	{Slug: "education", NameEn: "Education", NameAr: "التعليم", NameFr: "Éducation", Color: "indigo"},
	{Slug: "travel-tourism", NameEn: "Travel & Tourism", NameAr: "السفر والسياحة", NameFr: "Voyage & Tourisme", Color: "sky"},
	{Slug: "logistics", NameEn: "Logistics & Delivery", NameAr: "الخدمات اللوجستية والتوصيل", NameFr: "Logistique & Livraison", Color: "slate"},
	{Slug: "other", NameEn: "Other", NameAr: "أخرى", NameFr: "Autre", Color: "gray"},
}

// DemoProject references its country and industry by slug.
type DemoProject struct {
	NameEn, NameAr, NameFr string
	DescEn, DescAr, DescFr string
	Website, Email, Phone  string
	CountrySlug            string
	IndustrySlug           string
}

var DemoProjects = []DemoProject{
	{
		NameEn: "LuxDecor Home", NameAr: "لوكس ديكور هوم", NameFr: "LuxDecor Maison",
		DescEn:  "Premium sustainable home furnishings and artisan decor delivered across the GCC.",
		DescAr:  "مفروشات منزلية مستدامة فاخرة وديكور حرفي يتم توصيله عبر دول الخليج.",
		DescFr:  "Mobilier durable haut de gamme et décoration artisanale livrés dans le GCC.",
		Website: "www.luxdecor-home.com", Email: "contact@luxdecor.ae", Phone: "+971 4 123 4567",
		CountrySlug: "uae", IndustrySlug: "home-living",
	},
	{
		NameEn: "SwiftGrocer", NameAr: "سويفت جروسر", NameFr: "SwiftGrocer",
		DescEn:  "Next-hour grocery delivery service specializing in fresh organic produce.",
		DescAr:  "خدمة توصيل البقالة خلال ساعة متخصصة في المنتجات العضوية الطازجة.",
		DescFr:  "Service de livraison d'épicerie spécialisé dans les produits biologiques frais.",
		Website: "www.swiftgrocer.shop", Email: "support@swiftgrocer.sa", Phone: "+966 11 987 6543",
		CountrySlug: "saudi-arabia", IndustrySlug: "fmcg",
	},
	{
		NameEn: "TechWave Electronics", NameAr: "تك ويف للإلكترونيات", NameFr: "TechWave Électronique",
		DescEn:  "Innovative consumer electronics and smart home solutions provider.",
		DescAr:  "مزود حلول إلكترونيات استهلاكية مبتكرة وحلول المنزل الذكي.",
		DescFr:  "Fournisseur innovant d'électronique grand public et de solutions pour maison connectée.",
		Website: "www.techwave.io", Email: "sales@techwave.jo", Phone: "+962 6 789 0123",
		CountrySlug: "jordan", IndustrySlug: "electronics",
	},
	{
		NameEn: "ModaVibe", NameAr: "مودا فايب", NameFr: "ModaVibe",
		DescEn:  "Curated collection of regional designer apparel and fashion accessories.",
		DescAr:  "مجموعة مختارة من الملابس والإكسسوارات من مصممين إقليميين.",
		DescFr:  "Collection organisée de vêtements de créateurs régionaux et d'accessoires de mode.",
		Website: "www.modavibe.fashion", Email: "hello@modavibe.com.eg", Phone: "+20 2 2345 6789",
		CountrySlug: "egypt", IndustrySlug: "fashion",
	},
	{
		NameEn: "PurePetals", NameAr: "بيور بتالز", NameFr: "PurePetals",
		DescEn:  "Luxury floral arrangements and bespoke gift hampers for all occasions.",
		DescAr:  "تنسيقات زهور فاخرة وسلال هدايا مخصصة لجميع المناسبات.",
		DescFr:  "Arrangements floraux de luxe et paniers-cadeaux sur mesure pour toutes les occasions.",
		Website: "www.purepetals.me", Email: "order@purepetals.kw", Phone: "+965 2 234 5678",
		CountrySlug: "kuwait", IndustrySlug: "gifting-flowers",
	},
	{
		NameEn: "FitTrack Middle East", NameAr: "فيت تراك الشرق الأوسط", NameFr: "FitTrack Moyen-Orient",
		DescEn:  "The region's leading distributor of smart fitness equipment and supplements.",
		DescAr:  "الموزع الرائد في المنطقة لمعدات اللياقة البدنية الذكية والمكملات الغذائية.",
		DescFr:  "Le principal distributeur régional d'équipements de fitness intelligents et de suppléments.",
		Website: "www.fittrack.me", Email: "info@fittrack.qa", Phone: "+974 4455 6677",
		CountrySlug: "qatar", IndustrySlug: "sports-wellness",
	},
	{
		NameEn: "GulfGourmet", NameAr: "جلف جورميه", NameFr: "GulfGourmet",
		DescEn:  "Premium artisanal food products sourced from local farms across the Gulf region.",
		DescAr:  "منتجات غذائية حرفية فاخرة من المزارع المحلية عبر منطقة الخليج.",
		DescFr:  "Produits alimentaires artisanaux premium provenant de fermes locales du Golfe.",
		Website: "www.gulfgourmet.com", Email: "info@gulfgourmet.bh", Phone: "+973 1234 5678",
		CountrySlug: "bahrain", IndustrySlug: "food-beverage",
	},
	{
		NameEn: "GlowUp Beauty", NameAr: "جلو أب بيوتي", NameFr: "GlowUp Beauté",
		DescEn:  "Natural and organic beauty products crafted with Middle Eastern botanicals.",
		DescAr:  "منتجات تجميل طبيعية وعضوية مصنوعة من نباتات شرق أوسطية.",
		DescFr:  "Produits de beauté naturels et biologiques élaborés avec des plantes du Moyen-Orient.",
		Website: "www.glowupbeauty.com", Email: "hello@glowupbeauty.om", Phone: "+968 9876 5432",
		CountrySlug: "oman", IndustrySlug: "beauty-cosmetics",
	},
}

// Admin is the bootstrap account created when no admin exists yet.
type Admin struct {
	Email    string
	Password string
	Name     string
}
