package domain

// registry is the static table of cities accepted by the prediction model,
// keyed by exact name. Coordinates come from the model's training set and
// must stay in sync with it; do not "correct" them against other sources.
var registry = map[string]Location{
	// Andhra Pradesh
	"Visakhapatnam": {Name: "Visakhapatnam", Lat: 17.6868, Lon: 83.2185, State: "Andhra Pradesh"},
	"Vijayawada":    {Name: "Vijayawada", Lat: 16.5062, Lon: 80.6480, State: "Andhra Pradesh"},
	"Guntur":        {Name: "Guntur", Lat: 16.3068, Lon: 80.4365, State: "Andhra Pradesh"},
	"Tirupati":      {Name: "Tirupati", Lat: 13.6288, Lon: 79.4192, State: "Andhra Pradesh"},

	// Assam
	"Guwahati":  {Name: "Guwahati", Lat: 26.1445, Lon: 91.7362, State: "Assam"},
	"Silchar":   {Name: "Silchar", Lat: 24.8163, Lon: 92.7974, State: "Assam"},
	"Dibrugarh": {Name: "Dibrugarh", Lat: 27.4728, Lon: 94.9119, State: "Assam"},
	"Jorhat":    {Name: "Jorhat", Lat: 26.7509, Lon: 94.2037, State: "Assam"},

	// Bihar
	"Patna":       {Name: "Patna", Lat: 25.5941, Lon: 85.1376, State: "Bihar"},
	"Gaya":        {Name: "Gaya", Lat: 24.7955, Lon: 85.0000, State: "Bihar"},
	"Bhagalpur":   {Name: "Bhagalpur", Lat: 25.2445, Lon: 86.9718, State: "Bihar"},
	"Muzaffarpur": {Name: "Muzaffarpur", Lat: 26.1209, Lon: 85.3647, State: "Bihar"},

	// Chhattisgarh
	"Raipur":   {Name: "Raipur", Lat: 21.2514, Lon: 81.6296, State: "Chhattisgarh"},
	"Bhilai":   {Name: "Bhilai", Lat: 21.2092, Lon: 81.4285, State: "Chhattisgarh"},
	"Bilaspur": {Name: "Bilaspur", Lat: 22.0796, Lon: 82.1391, State: "Chhattisgarh"},

	// Delhi
	"Delhi":     {Name: "Delhi", Lat: 28.7041, Lon: 77.1025, State: "Delhi"},
	"New Delhi": {Name: "New Delhi", Lat: 28.6139, Lon: 77.2090, State: "Delhi"},

	// Goa
	"Panaji": {Name: "Panaji", Lat: 15.4909, Lon: 73.8278, State: "Goa"},
	"Margao": {Name: "Margao", Lat: 15.2733, Lon: 73.9581, State: "Goa"},

	// Gujarat
	"Ahmedabad": {Name: "Ahmedabad", Lat: 23.0225, Lon: 72.5714, State: "Gujarat"},
	"Surat":     {Name: "Surat", Lat: 21.1702, Lon: 72.8311, State: "Gujarat"},
	"Vadodara":  {Name: "Vadodara", Lat: 22.3072, Lon: 73.1812, State: "Gujarat"},
	"Rajkot":    {Name: "Rajkot", Lat: 22.3039, Lon: 70.8022, State: "Gujarat"},
	"Bhavnagar": {Name: "Bhavnagar", Lat: 21.7645, Lon: 72.1519, State: "Gujarat"},

	// Haryana
	"Gurgaon":   {Name: "Gurgaon", Lat: 28.4595, Lon: 77.0266, State: "Haryana"},
	"Faridabad": {Name: "Faridabad", Lat: 28.4089, Lon: 77.3178, State: "Haryana"},
	"Panipat":   {Name: "Panipat", Lat: 29.3909, Lon: 76.9635, State: "Haryana"},
	"Hisar":     {Name: "Hisar", Lat: 29.1492, Lon: 75.7217, State: "Haryana"},

	// Himachal Pradesh
	"Shimla":      {Name: "Shimla", Lat: 31.1048, Lon: 77.1734, State: "Himachal Pradesh"},
	"Dharamshala": {Name: "Dharamshala", Lat: 32.2190, Lon: 76.3234, State: "Himachal Pradesh"},
	"Manali":      {Name: "Manali", Lat: 32.2396, Lon: 77.1887, State: "Himachal Pradesh"},
	"Kullu":       {Name: "Kullu", Lat: 31.9630, Lon: 77.1080, State: "Himachal Pradesh"},

	// Jammu and Kashmir
	"Srinagar": {Name: "Srinagar", Lat: 34.0837, Lon: 74.7973, State: "Jammu and Kashmir"},
	"Jammu":    {Name: "Jammu", Lat: 32.7266, Lon: 74.8570, State: "Jammu and Kashmir"},
	"Leh":      {Name: "Leh", Lat: 34.1526, Lon: 77.5771, State: "Jammu and Kashmir"},

	// Jharkhand
	"Ranchi":     {Name: "Ranchi", Lat: 23.3441, Lon: 85.3096, State: "Jharkhand"},
	"Jamshedpur": {Name: "Jamshedpur", Lat: 22.8046, Lon: 86.2029, State: "Jharkhand"},
	"Dhanbad":    {Name: "Dhanbad", Lat: 23.7957, Lon: 86.4304, State: "Jharkhand"},
	"Bokaro":     {Name: "Bokaro", Lat: 23.6693, Lon: 85.9786, State: "Jharkhand"},

	// Karnataka
	"Bangalore": {Name: "Bangalore", Lat: 12.9716, Lon: 77.5946, State: "Karnataka"},
	"Mysore":    {Name: "Mysore", Lat: 12.2958, Lon: 76.6394, State: "Karnataka"},
	"Hubli":     {Name: "Hubli", Lat: 15.3647, Lon: 75.1240, State: "Karnataka"},
	"Mangalore": {Name: "Mangalore", Lat: 12.9141, Lon: 74.8560, State: "Karnataka"},

	// Kerala
	"Thiruvananthapuram": {Name: "Thiruvananthapuram", Lat: 8.5241, Lon: 76.9366, State: "Kerala"},
	"Kochi":              {Name: "Kochi", Lat: 9.9312, Lon: 76.2673, State: "Kerala"},
	"Kozhikode":          {Name: "Kozhikode", Lat: 11.2588, Lon: 75.7804, State: "Kerala"},
	"Thrissur":           {Name: "Thrissur", Lat: 10.5276, Lon: 76.2144, State: "Kerala"},
	"Wayanad":            {Name: "Wayanad", Lat: 11.6800, Lon: 76.1300, State: "Kerala"},
	"Idukki":             {Name: "Idukki", Lat: 9.8500, Lon: 76.9700, State: "Kerala"},

	// Madhya Pradesh
	"Bhopal":   {Name: "Bhopal", Lat: 23.2599, Lon: 77.4126, State: "Madhya Pradesh"},
	"Indore":   {Name: "Indore", Lat: 22.7196, Lon: 75.8577, State: "Madhya Pradesh"},
	"Gwalior":  {Name: "Gwalior", Lat: 26.2183, Lon: 78.1828, State: "Madhya Pradesh"},
	"Jabalpur": {Name: "Jabalpur", Lat: 23.1815, Lon: 79.9864, State: "Madhya Pradesh"},

	// Maharashtra
	"Mumbai":     {Name: "Mumbai", Lat: 19.0760, Lon: 72.8777, State: "Maharashtra"},
	"Pune":       {Name: "Pune", Lat: 18.5204, Lon: 73.8567, State: "Maharashtra"},
	"Nagpur":     {Name: "Nagpur", Lat: 21.1458, Lon: 79.0882, State: "Maharashtra"},
	"Nashik":     {Name: "Nashik", Lat: 19.9975, Lon: 73.7898, State: "Maharashtra"},
	"Aurangabad": {Name: "Aurangabad", Lat: 19.8762, Lon: 75.3433, State: "Maharashtra"},
	"Kolhapur":   {Name: "Kolhapur", Lat: 16.7000, Lon: 74.2400, State: "Maharashtra"},
	"Sangli":     {Name: "Sangli", Lat: 16.8500, Lon: 74.5800, State: "Maharashtra"},
	"Satara":     {Name: "Satara", Lat: 17.6800, Lon: 74.0000, State: "Maharashtra"},

	// Manipur
	"Imphal":  {Name: "Imphal", Lat: 24.8170, Lon: 93.9368, State: "Manipur"},
	"Thoubal": {Name: "Thoubal", Lat: 24.6333, Lon: 94.0167, State: "Manipur"},

	// Meghalaya
	"Shillong": {Name: "Shillong", Lat: 25.5788, Lon: 91.8933, State: "Meghalaya"},
	"Tura":     {Name: "Tura", Lat: 25.5144, Lon: 90.2029, State: "Meghalaya"},

	// Mizoram
	"Aizawl":  {Name: "Aizawl", Lat: 23.7271, Lon: 92.7176, State: "Mizoram"},
	"Lunglei": {Name: "Lunglei", Lat: 22.8833, Lon: 92.7333, State: "Mizoram"},

	// Nagaland
	"Kohima":  {Name: "Kohima", Lat: 25.6751, Lon: 94.1086, State: "Nagaland"},
	"Dimapur": {Name: "Dimapur", Lat: 25.9117, Lon: 93.7215, State: "Nagaland"},

	// Odisha
	"Bhubaneswar": {Name: "Bhubaneswar", Lat: 20.2961, Lon: 85.8245, State: "Odisha"},
	"Cuttack":     {Name: "Cuttack", Lat: 20.4625, Lon: 85.8830, State: "Odisha"},
	"Rourkela":    {Name: "Rourkela", Lat: 22.2604, Lon: 84.8536, State: "Odisha"},
	"Berhampur":   {Name: "Berhampur", Lat: 19.3149, Lon: 84.7941, State: "Odisha"},

	// Punjab
	"Chandigarh": {Name: "Chandigarh", Lat: 30.7333, Lon: 76.7794, State: "Punjab"},
	"Ludhiana":   {Name: "Ludhiana", Lat: 30.9010, Lon: 75.8573, State: "Punjab"},
	"Amritsar":   {Name: "Amritsar", Lat: 31.6340, Lon: 74.8720, State: "Punjab"},
	"Jalandhar":  {Name: "Jalandhar", Lat: 31.3260, Lon: 75.5762, State: "Punjab"},
	"Firozpur":   {Name: "Firozpur", Lat: 30.9200, Lon: 74.6000, State: "Punjab"},

	// Rajasthan
	"Jaipur":  {Name: "Jaipur", Lat: 26.9124, Lon: 75.7873, State: "Rajasthan"},
	"Jodhpur": {Name: "Jodhpur", Lat: 26.2389, Lon: 73.0243, State: "Rajasthan"},
	"Udaipur": {Name: "Udaipur", Lat: 24.5854, Lon: 73.7125, State: "Rajasthan"},
	"Kota":    {Name: "Kota", Lat: 25.2138, Lon: 75.8648, State: "Rajasthan"},
	"Ajmer":   {Name: "Ajmer", Lat: 26.4499, Lon: 74.6399, State: "Rajasthan"},

	// Sikkim
	"Gangtok": {Name: "Gangtok", Lat: 27.3314, Lon: 88.6138, State: "Sikkim"},
	"Namchi":  {Name: "Namchi", Lat: 27.1667, Lon: 88.3500, State: "Sikkim"},

	// Tamil Nadu
	"Chennai":         {Name: "Chennai", Lat: 13.0827, Lon: 80.2707, State: "Tamil Nadu"},
	"Coimbatore":      {Name: "Coimbatore", Lat: 11.0168, Lon: 76.9558, State: "Tamil Nadu"},
	"Madurai":         {Name: "Madurai", Lat: 9.9252, Lon: 78.1198, State: "Tamil Nadu"},
	"Tiruchirappalli": {Name: "Tiruchirappalli", Lat: 10.7905, Lon: 78.7047, State: "Tamil Nadu"},

	// Telangana
	"Hyderabad":  {Name: "Hyderabad", Lat: 17.3850, Lon: 78.4867, State: "Telangana"},
	"Warangal":   {Name: "Warangal", Lat: 17.9689, Lon: 79.5941, State: "Telangana"},
	"Nizamabad":  {Name: "Nizamabad", Lat: 18.6715, Lon: 78.0938, State: "Telangana"},
	"Karimnagar": {Name: "Karimnagar", Lat: 18.4386, Lon: 79.1288, State: "Telangana"},

	// Tripura
	"Agartala":    {Name: "Agartala", Lat: 23.8315, Lon: 91.2862, State: "Tripura"},
	"Dharmanagar": {Name: "Dharmanagar", Lat: 24.3667, Lon: 92.1667, State: "Tripura"},

	// Uttar Pradesh
	"Lucknow":   {Name: "Lucknow", Lat: 26.8467, Lon: 80.9462, State: "Uttar Pradesh"},
	"Kanpur":    {Name: "Kanpur", Lat: 26.4499, Lon: 80.3319, State: "Uttar Pradesh"},
	"Agra":      {Name: "Agra", Lat: 27.1767, Lon: 78.0081, State: "Uttar Pradesh"},
	"Varanasi":  {Name: "Varanasi", Lat: 25.3176, Lon: 82.9739, State: "Uttar Pradesh"},
	"Allahabad": {Name: "Allahabad", Lat: 25.4358, Lon: 81.8463, State: "Uttar Pradesh"},

	// Uttarakhand
	"Dehradun":  {Name: "Dehradun", Lat: 30.3165, Lon: 78.0322, State: "Uttarakhand"},
	"Haridwar":  {Name: "Haridwar", Lat: 29.9457, Lon: 78.1642, State: "Uttarakhand"},
	"Rishikesh": {Name: "Rishikesh", Lat: 30.0869, Lon: 78.2676, State: "Uttarakhand"},
	"Nainital":  {Name: "Nainital", Lat: 29.3919, Lon: 79.4542, State: "Uttarakhand"},

	// West Bengal
	"Kolkata":  {Name: "Kolkata", Lat: 22.5726, Lon: 88.3639, State: "West Bengal"},
	"Howrah":   {Name: "Howrah", Lat: 22.5958, Lon: 88.2636, State: "West Bengal"},
	"Durgapur": {Name: "Durgapur", Lat: 23.5204, Lon: 87.3119, State: "West Bengal"},
	"Asansol":  {Name: "Asansol", Lat: 23.6739, Lon: 86.9524, State: "West Bengal"},
}
