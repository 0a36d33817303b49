package content

import "github.com/barkoapp/barko/internal/plan"

// QuizQuestions returns the static quiz for a template lesson id, or nil
// when no quiz exists for that id.
func QuizQuestions(lessonID string) []plan.QuizQuestion {
	qs, ok := quizBank[lessonID]
	if !ok {
		return nil
	}
	out := make([]plan.QuizQuestion, len(qs))
	copy(out, qs)
	return out
}

var quizBank = map[string][]plan.QuizQuestion{
	"1": {
		{
			ID:       "1-1",
			Question: "What is the difference between gross and net income?",
			Options: []string{
				"Gross is after taxes, net is before taxes",
				"Gross is before taxes and deductions, net is what you actually receive",
				"They are the same thing",
				"Gross includes investments, net does not",
			},
			CorrectAnswer: "Gross is before taxes and deductions, net is what you actually receive",
			Explanation:   "Gross income is your total earnings before any taxes or deductions, while net income is what actually hits your bank account after all deductions.",
		},
		{
			ID:       "1-2",
			Question: "Which of the following is NOT typically considered a source of income?",
			Options: []string{
				"Side hustle earnings",
				"Investment dividends",
				"Credit card rewards",
				"Passive rental income",
			},
			CorrectAnswer: "Credit card rewards",
			Explanation:   "While credit card rewards provide value, they are not considered income. Income comes from work, investments, or business activities.",
		},
		{
			ID:       "1-3",
			Question: "Why should you budget based on net income instead of gross income?",
			Options: []string{
				"Net income is easier to calculate",
				"Gross income changes too frequently",
				"Net income represents what you actually have available to spend",
				"Employers prefer you to use net income",
			},
			CorrectAnswer: "Net income represents what you actually have available to spend",
			Explanation:   "Budgeting based on net income ensures you are only planning to spend money you actually receive after taxes and deductions.",
		},
	},
	"2": {
		{
			ID:       "2-1",
			Question: "How much should a typical emergency fund cover?",
			Options: []string{
				"1-2 months of expenses",
				"3-6 months of expenses",
				"12-18 months of expenses",
				"2-3 years of expenses",
			},
			CorrectAnswer: "3-6 months of expenses",
			Explanation:   "Financial experts recommend 3-6 months of living expenses for most people, though those with less stable income may want 6-9 months.",
		},
		{
			ID:       "2-2",
			Question: "Where is the best place to keep an emergency fund?",
			Options: []string{
				"In stocks for higher returns",
				"In your checking account with your daily spending money",
				"In a high-yield savings account",
				"In a retirement account",
			},
			CorrectAnswer: "In a high-yield savings account",
			Explanation:   "A high-yield savings account provides easy access to your money while earning interest, without the risks or penalties of other options.",
		},
		{
			ID:       "2-3",
			Question: "Which of these is a TRUE emergency that warrants using your emergency fund?",
			Options: []string{
				"A great sale on a new TV",
				"A vacation opportunity",
				"Unexpected medical expenses",
				"Holiday gift shopping",
			},
			CorrectAnswer: "Unexpected medical expenses",
			Explanation:   "Emergency funds are for true emergencies like medical expenses, job loss, or urgent repairs - not planned expenses or wants.",
		},
	},
	"3": {
		{
			ID:       "3-1",
			Question: "In the 50/30/20 budget rule, what does the 50% represent?",
			Options: []string{
				"Savings and investments",
				"Wants and entertainment",
				"Needs and essential expenses",
				"Debt repayment",
			},
			CorrectAnswer: "Needs and essential expenses",
			Explanation:   "The 50% is allocated to needs - essential expenses like housing, utilities, groceries, and transportation.",
		},
		{
			ID:       "3-2",
			Question: `Which of the following is considered a "want" rather than a "need"?`,
			Options: []string{
				"Rent or mortgage payment",
				"Grocery shopping",
				"Streaming service subscriptions",
				"Car insurance",
			},
			CorrectAnswer: "Streaming service subscriptions",
			Explanation:   "Streaming services are entertainment and therefore wants. The other options are essential needs for daily living and legal requirements.",
		},
		{
			ID:       "3-3",
			Question: "According to the 50/30/20 rule, how much should go toward savings and debt repayment?",
			Options: []string{
				"10%",
				"20%",
				"30%",
				"50%",
			},
			CorrectAnswer: "20%",
			Explanation:   "The 20% portion is dedicated to savings, investments, and paying down debt beyond minimum payments.",
		},
	},
	"4": {
		{
			ID:       "4-1",
			Question: "What is considered an excellent credit score?",
			Options: []string{
				"600-649",
				"650-699",
				"700-749",
				"750+",
			},
			CorrectAnswer: "750+",
			Explanation:   "A score of 750 or higher is considered excellent and will qualify you for the best interest rates and loan terms.",
		},
		{
			ID:       "4-2",
			Question: "What factor has the biggest impact on your credit score?",
			Options: []string{
				"Types of credit used",
				"Length of credit history",
				"Payment history",
				"New credit inquiries",
			},
			CorrectAnswer: "Payment history",
			Explanation:   "Payment history accounts for 35% of your credit score, making it the most important factor. Always pay bills on time.",
		},
		{
			ID:       "4-3",
			Question: "What should you keep your credit utilization below for optimal credit health?",
			Options: []string{
				"10%",
				"30%",
				"50%",
				"75%",
			},
			CorrectAnswer: "30%",
			Explanation:   "Keeping credit utilization below 30% is recommended, though below 10% is even better for your credit score.",
		},
	},
	"5": {
		{
			ID:       "5-1",
			Question: "What is the debt snowball method?",
			Options: []string{
				"Paying off highest interest debt first",
				"Paying off smallest debt first",
				"Making minimum payments on all debts equally",
				"Consolidating all debts into one loan",
			},
			CorrectAnswer: "Paying off smallest debt first",
			Explanation:   "The debt snowball method focuses on paying off the smallest debts first to gain psychological momentum and motivation.",
		},
		{
			ID:       "5-2",
			Question: "What is the main advantage of the debt avalanche method?",
			Options: []string{
				"It is easier to understand",
				"It provides quick psychological wins",
				"It saves the most money in interest",
				"It requires the smallest monthly payment",
			},
			CorrectAnswer: "It saves the most money in interest",
			Explanation:   "The debt avalanche method targets high-interest debt first, which saves you the most money in interest charges over time.",
		},
		{
			ID:       "5-3",
			Question: "While paying off debt, what should you do about taking on new debt?",
			Options: []string{
				"Only take on new debt if the interest rate is low",
				"Avoid taking on new debt",
				"Only use credit cards for emergencies",
				"It is okay to take on new debt for investments",
			},
			CorrectAnswer: "Avoid taking on new debt",
			Explanation:   "While paying off existing debt, it is best to avoid taking on any new debt to make faster progress toward becoming debt-free.",
		},
	},
	"6": {
		{
			ID:       "6-1",
			Question: "What is the historical average annual return of the stock market?",
			Options: []string{
				"5%",
				"10%",
				"15%",
				"20%",
			},
			CorrectAnswer: "10%",
			Explanation:   "The stock market has historically returned about 10% annually over the long term, though returns vary year to year.",
		},
		{
			ID:       "6-2",
			Question: "What is the main advantage of index funds?",
			Options: []string{
				"They guarantee positive returns",
				"They provide instant diversification at low cost",
				"They never lose value",
				"They require no long-term commitment",
			},
			CorrectAnswer: "They provide instant diversification at low cost",
			Explanation:   "Index funds offer broad diversification across many stocks or bonds in a single investment, with low fees compared to actively managed funds.",
		},
		{
			ID:       "6-3",
			Question: "What investing principle is more important: timing the market or time in the market?",
			Options: []string{
				"Timing the market - buying at the perfect time",
				"Time in the market - staying invested for the long term",
				"Both are equally important",
				"Neither matters for investment success",
			},
			CorrectAnswer: "Time in the market - staying invested for the long term",
			Explanation:   "Time in the market is more important than timing the market. Staying invested long-term allows compound growth to work in your favor.",
		},
	},
	"7": {
		{
			ID:       "7-1",
			Question: "What percentage of pre-retirement income should you aim to replace in retirement?",
			Options: []string{
				"40-50%",
				"70-80%",
				"100%",
				"120%",
			},
			CorrectAnswer: "70-80%",
			Explanation:   "Most people need to replace 70-80% of their pre-retirement income to maintain their lifestyle, as some expenses decrease in retirement.",
		},
		{
			ID:       "7-2",
			Question: "What is the main advantage of getting an employer 401(k) match?",
			Options: []string{
				"Lower taxes immediately",
				"Free money that boosts your retirement savings",
				"No investment risk",
				"Higher social security benefits",
			},
			CorrectAnswer: "Free money that boosts your retirement savings",
			Explanation:   "An employer match is essentially free money - if you contribute enough to get the full match, you are instantly getting a 100% return on that portion.",
		},
		{
			ID:       "7-3",
			Question: "How much of your income should you aim to save for retirement?",
			Options: []string{
				"5%",
				"10%",
				"15%",
				"25%",
			},
			CorrectAnswer: "15%",
			Explanation:   "Experts recommend saving 15% of your income for retirement, including employer contributions, to ensure a comfortable retirement.",
		},
	},
	"8": {
		{
			ID:       "8-1",
			Question: "What is the benefit of contributing to a traditional 401(k)?",
			Options: []string{
				"Withdrawals are tax-free in retirement",
				"Contributions reduce your taxable income now",
				"No contribution limits",
				"Guaranteed investment returns",
			},
			CorrectAnswer: "Contributions reduce your taxable income now",
			Explanation:   "Traditional 401(k) contributions are made with pre-tax dollars, reducing your taxable income in the year you contribute.",
		},
		{
			ID:       "8-2",
			Question: "What is a Health Savings Account (HSA) triple tax benefit?",
			Options: []string{
				"Tax-deductible contributions, tax-free growth, tax-free qualified withdrawals",
				"Three times the normal contribution limit",
				"Tax benefits for three years",
				"Reduces taxes by three percentage points",
			},
			CorrectAnswer: "Tax-deductible contributions, tax-free growth, tax-free qualified withdrawals",
			Explanation:   "HSAs offer three tax benefits: contributions reduce taxable income, growth is tax-free, and withdrawals for medical expenses are tax-free.",
		},
		{
			ID:       "8-3",
			Question: "What is tax-loss harvesting?",
			Options: []string{
				"Avoiding paying taxes on investments",
				"Selling losing investments to offset capital gains",
				"Claiming fake losses on your tax return",
				"Investing only in tax-free bonds",
			},
			CorrectAnswer: "Selling losing investments to offset capital gains",
			Explanation:   "Tax-loss harvesting involves selling investments at a loss to offset capital gains, reducing your overall tax bill.",
		},
	},
	"9": {
		{
			ID:       "9-1",
			Question: "What is a common rule for rental property income?",
			Options: []string{
				"Monthly rent should equal property value",
				"Monthly rent should be at least 1% of property value",
				"Monthly rent should be 10% of property value",
				"Rent amount does not matter",
			},
			CorrectAnswer: "Monthly rent should be at least 1% of property value",
			Explanation:   "The 1% rule suggests monthly rent should be at least 1% of the property value to ensure positive cash flow after expenses.",
		},
		{
			ID:       "9-2",
			Question: "What is the most important factor when choosing a real estate investment?",
			Options: []string{
				"The age of the property",
				"Location",
				"The color of the house",
				"Number of bedrooms",
			},
			CorrectAnswer: "Location",
			Explanation:   "Location is crucial in real estate - properties in desirable areas with good schools, jobs, and low crime appreciate more and attract better tenants.",
		},
		{
			ID:       "9-3",
			Question: "What costs should be included when calculating real estate investment returns?",
			Options: []string{
				"Only the mortgage payment",
				"Only property taxes",
				"Purchase price, taxes, insurance, maintenance, repairs, and vacancies",
				"Only the down payment",
			},
			CorrectAnswer: "Purchase price, taxes, insurance, maintenance, repairs, and vacancies",
			Explanation:   "All costs must be considered including purchase price, closing costs, property taxes, insurance, maintenance, repairs, and potential vacancy periods.",
		},
	},
	"10": {
		{
			ID:       "10-1",
			Question: `What makes income truly "passive"?`,
			Options: []string{
				"It requires no initial effort",
				"It generates money with minimal ongoing effort",
				"It comes from a traditional job",
				"It is completely risk-free",
			},
			CorrectAnswer: "It generates money with minimal ongoing effort",
			Explanation:   "Passive income requires upfront work to establish but generates money with minimal ongoing effort once set up.",
		},
		{
			ID:       "10-2",
			Question: "What is a dividend?",
			Options: []string{
				"A company bonus for employees",
				"A type of savings account",
				"Regular payment of company profits to shareholders",
				"A government tax refund",
			},
			CorrectAnswer: "Regular payment of company profits to shareholders",
			Explanation:   "Dividends are portions of company profits distributed regularly to shareholders as a return on their investment.",
		},
		{
			ID:       "10-3",
			Question: "What is the most passive form of income mentioned?",
			Options: []string{
				"Rental properties",
				"Starting a business",
				"Index fund investing with automatic contributions",
				"Creating digital products",
			},
			CorrectAnswer: "Index fund investing with automatic contributions",
			Explanation:   "Index fund investing with automatic contributions is the most passive option - requiring minimal time or expertise while providing historical returns.",
		},
	},
}
