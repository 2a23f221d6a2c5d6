package regions

import "github.com/aftab0khan021/mgnrega/internal/domain"

// Catalog returns the fixed reference catalog: 28 states and their districts.
// Every district's StateCode and StateName match a state in the returned list.
// The slices are freshly allocated on each call.
func Catalog() ([]domain.State, []domain.District) {
	states := make([]domain.State, len(catalogStates))
	copy(states, catalogStates)

	districts := make([]domain.District, 0, len(catalogDistricts))
	for _, d := range catalogDistricts {
		d.StateName = stateNames[d.StateCode]
		districts = append(districts, d)
	}

	return states, districts
}

var stateNames = func() map[string]string {
	m := make(map[string]string, len(catalogStates))
	for _, s := range catalogStates {
		m[s.Code] = s.Name
	}
	return m
}()

var catalogStates = []domain.State{
	{Code: "AP", Name: "Andhra Pradesh", NameLocal: "आंध्र प्रदेश"},
	{Code: "AR", Name: "Arunachal Pradesh", NameLocal: "अरुणाचल प्रदेश"},
	{Code: "AS", Name: "Assam", NameLocal: "असम"},
	{Code: "BR", Name: "Bihar", NameLocal: "बिहार"},
	{Code: "CT", Name: "Chhattisgarh", NameLocal: "छत्तीसगढ़"},
	{Code: "GA", Name: "Goa", NameLocal: "गोवा"},
	{Code: "GJ", Name: "Gujarat", NameLocal: "गुजरात"},
	{Code: "HR", Name: "Haryana", NameLocal: "हरियाणा"},
	{Code: "HP", Name: "Himachal Pradesh", NameLocal: "हिमाचल प्रदेश"},
	{Code: "JH", Name: "Jharkhand", NameLocal: "झारखंड"},
	{Code: "KA", Name: "Karnataka", NameLocal: "कर्नाटक"},
	{Code: "KL", Name: "Kerala", NameLocal: "केरल"},
	{Code: "MP", Name: "Madhya Pradesh", NameLocal: "मध्य प्रदेश"},
	{Code: "MH", Name: "Maharashtra", NameLocal: "महाराष्ट्र"},
	{Code: "MN", Name: "Manipur", NameLocal: "मणिपुर"},
	{Code: "ML", Name: "Meghalaya", NameLocal: "मेघालय"},
	{Code: "MZ", Name: "Mizoram", NameLocal: "मिजोरम"},
	{Code: "NL", Name: "Nagaland", NameLocal: "नागालैंड"},
	{Code: "OR", Name: "Odisha", NameLocal: "ओडिशा"},
	{Code: "PB", Name: "Punjab", NameLocal: "पंजाब"},
	{Code: "RJ", Name: "Rajasthan", NameLocal: "राजस्थान"},
	{Code: "SK", Name: "Sikkim", NameLocal: "सिक्किम"},
	{Code: "TN", Name: "Tamil Nadu", NameLocal: "तमिलनाडु"},
	{Code: "TG", Name: "Telangana", NameLocal: "तेलंगाना"},
	{Code: "TR", Name: "Tripura", NameLocal: "त्रिपुरा"},
	{Code: "UP", Name: "Uttar Pradesh", NameLocal: "उत्तर प्रदेश"},
	{Code: "UT", Name: "Uttarakhand", NameLocal: "उत्तराखंड"},
	{Code: "WB", Name: "West Bengal", NameLocal: "पश्चिम बंगाल"},
}

// StateName is filled in by Catalog.
var catalogDistricts = []domain.District{
	// Andhra Pradesh
	{Code: "AP001", Name: "Visakhapatnam", NameLocal: "विशाखापत्तनम", StateCode: "AP"},
	{Code: "AP002", Name: "Vijayawada", NameLocal: "विजयवाड़ा", StateCode: "AP"},
	{Code: "AP003", Name: "Guntur", NameLocal: "गुंटूर", StateCode: "AP"},
	{Code: "AP004", Name: "Nellore", NameLocal: "नेल्लोर", StateCode: "AP"},
	{Code: "AP005", Name: "Kurnool", NameLocal: "कुरनूल", StateCode: "AP"},

	// Arunachal Pradesh
	{Code: "AR001", Name: "Itanagar", NameLocal: "ईटानगर", StateCode: "AR"},
	{Code: "AR002", Name: "Tawang", NameLocal: "तवांग", StateCode: "AR"},
	{Code: "AR003", Name: "Changlang", NameLocal: "चांगलांग", StateCode: "AR"},

	// Assam
	{Code: "AS001", Name: "Guwahati", NameLocal: "गुवाहाटी", StateCode: "AS"},
	{Code: "AS002", Name: "Dibrugarh", NameLocal: "डिब्रूगढ़", StateCode: "AS"},
	{Code: "AS003", Name: "Silchar", NameLocal: "सिलचर", StateCode: "AS"},
	{Code: "AS004", Name: "Jorhat", NameLocal: "जोरहाट", StateCode: "AS"},

	// Bihar
	{Code: "BR001", Name: "Patna", NameLocal: "पटना", StateCode: "BR"},
	{Code: "BR002", Name: "Gaya", NameLocal: "गया", StateCode: "BR"},
	{Code: "BR003", Name: "Muzaffarpur", NameLocal: "मुजफ्फरपुर", StateCode: "BR"},
	{Code: "BR004", Name: "Bhagalpur", NameLocal: "भागलपुर", StateCode: "BR"},
	{Code: "BR005", Name: "Darbhanga", NameLocal: "दरभंगा", StateCode: "BR"},

	// Chhattisgarh
	{Code: "CT001", Name: "Raipur", NameLocal: "रायपुर", StateCode: "CT"},
	{Code: "CT002", Name: "Bilaspur", NameLocal: "बिलासपुर", StateCode: "CT"},
	{Code: "CT003", Name: "Durg", NameLocal: "दुर्ग", StateCode: "CT"},
	{Code: "CT004", Name: "Korba", NameLocal: "कोरबा", StateCode: "CT"},

	// Goa
	{Code: "GA001", Name: "North Goa", NameLocal: "उत्तर गोवा", StateCode: "GA"},
	{Code: "GA002", Name: "South Goa", NameLocal: "दक्षिण गोवा", StateCode: "GA"},

	// Gujarat
	{Code: "GJ001", Name: "Ahmedabad", NameLocal: "अहमदाबाद", StateCode: "GJ"},
	{Code: "GJ002", Name: "Surat", NameLocal: "सूरत", StateCode: "GJ"},
	{Code: "GJ003", Name: "Vadodara", NameLocal: "वडोदरा", StateCode: "GJ"},
	{Code: "GJ004", Name: "Rajkot", NameLocal: "राजकोट", StateCode: "GJ"},
	{Code: "GJ005", Name: "Bhavnagar", NameLocal: "भावनगर", StateCode: "GJ"},

	// Haryana
	{Code: "HR001", Name: "Gurugram", NameLocal: "गुरुग्राम", StateCode: "HR"},
	{Code: "HR002", Name: "Faridabad", NameLocal: "फरीदाबाद", StateCode: "HR"},
	{Code: "HR003", Name: "Panipat", NameLocal: "पानीपत", StateCode: "HR"},
	{Code: "HR004", Name: "Ambala", NameLocal: "अंबाला", StateCode: "HR"},

	// Himachal Pradesh
	{Code: "HP001", Name: "Shimla", NameLocal: "शिमला", StateCode: "HP"},
	{Code: "HP002", Name: "Kangra", NameLocal: "कांगड़ा", StateCode: "HP"},
	{Code: "HP003", Name: "Mandi", NameLocal: "मंडी", StateCode: "HP"},

	// Jharkhand
	{Code: "JH001", Name: "Ranchi", NameLocal: "रांची", StateCode: "JH"},
	{Code: "JH002", Name: "Jamshedpur", NameLocal: "जमशेदपुर", StateCode: "JH"},
	{Code: "JH003", Name: "Dhanbad", NameLocal: "धनबाद", StateCode: "JH"},
	{Code: "JH004", Name: "Bokaro", NameLocal: "बोकारो", StateCode: "JH"},

	// Karnataka
	{Code: "KA001", Name: "Bangalore", NameLocal: "बैंगलोर", StateCode: "KA"},
	{Code: "KA002", Name: "Mysore", NameLocal: "मैसूर", StateCode: "KA"},
	{Code: "KA003", Name: "Mangalore", NameLocal: "मंगलौर", StateCode: "KA"},
	{Code: "KA004", Name: "Hubli", NameLocal: "हुबली", StateCode: "KA"},

	// Kerala
	{Code: "KL001", Name: "Thiruvananthapuram", NameLocal: "तिरुवनंतपुरम", StateCode: "KL"},
	{Code: "KL002", Name: "Kochi", NameLocal: "कोच्चि", StateCode: "KL"},
	{Code: "KL003", Name: "Kozhikode", NameLocal: "कोझिकोड", StateCode: "KL"},
	{Code: "KL004", Name: "Kollam", NameLocal: "कोल्लम", StateCode: "KL"},

	// Madhya Pradesh
	{Code: "MP001", Name: "Bhopal", NameLocal: "भोपाल", StateCode: "MP"},
	{Code: "MP002", Name: "Indore", NameLocal: "इंदौर", StateCode: "MP"},
	{Code: "MP003", Name: "Jabalpur", NameLocal: "जबलपुर", StateCode: "MP"},
	{Code: "MP004", Name: "Gwalior", NameLocal: "ग्वालियर", StateCode: "MP"},
	{Code: "MP005", Name: "Ujjain", NameLocal: "उज्जैन", StateCode: "MP"},

	// Maharashtra
	{Code: "MH001", Name: "Mumbai", NameLocal: "मुंबई", StateCode: "MH"},
	{Code: "MH002", Name: "Pune", NameLocal: "पुणे", StateCode: "MH"},
	{Code: "MH003", Name: "Nagpur", NameLocal: "नागपुर", StateCode: "MH"},
	{Code: "MH004", Name: "Nashik", NameLocal: "नासिक", StateCode: "MH"},
	{Code: "MH005", Name: "Aurangabad", NameLocal: "औरंगाबाद", StateCode: "MH"},

	// Manipur
	{Code: "MN001", Name: "Imphal West", NameLocal: "इंफाल पश्चिम", StateCode: "MN"},
	{Code: "MN002", Name: "Imphal East", NameLocal: "इंफाल पूर्व", StateCode: "MN"},
	{Code: "MN003", Name: "Thoubal", NameLocal: "थौबल", StateCode: "MN"},

	// Meghalaya
	{Code: "ML001", Name: "Shillong", NameLocal: "शिलांग", StateCode: "ML"},
	{Code: "ML002", Name: "Tura", NameLocal: "तुरा", StateCode: "ML"},

	// Mizoram
	{Code: "MZ001", Name: "Aizawl", NameLocal: "आइजोल", StateCode: "MZ"},
	{Code: "MZ002", Name: "Lunglei", NameLocal: "लुंगलेई", StateCode: "MZ"},

	// Nagaland
	{Code: "NL001", Name: "Kohima", NameLocal: "कोहिमा", StateCode: "NL"},
	{Code: "NL002", Name: "Dimapur", NameLocal: "दीमापुर", StateCode: "NL"},

	// Odisha
	{Code: "OR001", Name: "Bhubaneswar", NameLocal: "भुवनेश्वर", StateCode: "OR"},
	{Code: "OR002", Name: "Cuttack", NameLocal: "कटक", StateCode: "OR"},
	{Code: "OR003", Name: "Rourkela", NameLocal: "राउरकेला", StateCode: "OR"},
	{Code: "OR004", Name: "Puri", NameLocal: "पुरी", StateCode: "OR"},

	// Punjab
	{Code: "PB001", Name: "Ludhiana", NameLocal: "लुधियाना", StateCode: "PB"},
	{Code: "PB002", Name: "Amritsar", NameLocal: "अमृतसर", StateCode: "PB"},
	{Code: "PB003", Name: "Jalandhar", NameLocal: "जालंधर", StateCode: "PB"},
	{Code: "PB004", Name: "Patiala", NameLocal: "पटियाला", StateCode: "PB"},

	// Rajasthan
	{Code: "RJ001", Name: "Jaipur", NameLocal: "जयपुर", StateCode: "RJ"},
	{Code: "RJ002", Name: "Jodhpur", NameLocal: "जोधपुर", StateCode: "RJ"},
	{Code: "RJ003", Name: "Udaipur", NameLocal: "उदयपुर", StateCode: "RJ"},
	{Code: "RJ004", Name: "Kota", NameLocal: "कोटा", StateCode: "RJ"},
	{Code: "RJ005", Name: "Ajmer", NameLocal: "अजमेर", StateCode: "RJ"},

	// Sikkim
	{Code: "SK001", Name: "Gangtok", NameLocal: "गंगटोक", StateCode: "SK"},
	{Code: "SK002", Name: "Namchi", NameLocal: "नामची", StateCode: "SK"},

	// Tamil Nadu
	{Code: "TN001", Name: "Chennai", NameLocal: "चेन्नई", StateCode: "TN"},
	{Code: "TN002", Name: "Coimbatore", NameLocal: "कोयंबटूर", StateCode: "TN"},
	{Code: "TN003", Name: "Madurai", NameLocal: "मदुरै", StateCode: "TN"},
	{Code: "TN004", Name: "Trichy", NameLocal: "तिरुचि", StateCode: "TN"},
	{Code: "TN005", Name: "Salem", NameLocal: "सेलम", StateCode: "TN"},

	// Telangana
	{Code: "TG001", Name: "Hyderabad", NameLocal: "हैदराबाद", StateCode: "TG"},
	{Code: "TG002", Name: "Warangal", NameLocal: "वारंगल", StateCode: "TG"},
	{Code: "TG003", Name: "Nizamabad", NameLocal: "निज़ामाबाद", StateCode: "TG"},
	{Code: "TG004", Name: "Khammam", NameLocal: "खम्मम", StateCode: "TG"},

	// Tripura
	{Code: "TR001", Name: "Agartala", NameLocal: "अगरतला", StateCode: "TR"},
	{Code: "TR002", Name: "Udaipur", NameLocal: "उदयपुर", StateCode: "TR"},

	// Uttar Pradesh
	{Code: "UP001", Name: "Lucknow", NameLocal: "लखनऊ", StateCode: "UP"},
	{Code: "UP002", Name: "Kanpur", NameLocal: "कानपुर", StateCode: "UP"},
	{Code: "UP003", Name: "Varanasi", NameLocal: "वाराणसी", StateCode: "UP"},
	{Code: "UP004", Name: "Prayagraj", NameLocal: "प्रयागराज", StateCode: "UP"},
	{Code: "UP005", Name: "Agra", NameLocal: "आगरा", StateCode: "UP"},
	{Code: "UP006", Name: "Meerut", NameLocal: "मेरठ", StateCode: "UP"},
	{Code: "UP007", Name: "Noida", NameLocal: "नोएडा", StateCode: "UP"},

	// Uttarakhand
	{Code: "UT001", Name: "Dehradun", NameLocal: "देहरादून", StateCode: "UT"},
	{Code: "UT002", Name: "Haridwar", NameLocal: "हरिद्वार", StateCode: "UT"},
	{Code: "UT003", Name: "Nainital", NameLocal: "नैनीताल", StateCode: "UT"},

	// West Bengal
	{Code: "WB001", Name: "Kolkata", NameLocal: "कोलकाता", StateCode: "WB"},
	{Code: "WB002", Name: "Darjeeling", NameLocal: "दार्जिलिंग", StateCode: "WB"},
	{Code: "WB003", Name: "Howrah", NameLocal: "हावड़ा", StateCode: "WB"},
	{Code: "WB004", Name: "Siliguri", NameLocal: "सिलीगुड़ी", StateCode: "WB"},
}
