// Package tools holds the fixed set of canned portfolio cards and the
// keyword rules that pick one for a user message.
package tools

// Action names a parameterless tool. The zero value means no tool.
type Action string

const (
	ActionNone         Action = ""
	ActionProjects     Action = "getProjects"
	ActionPresentation Action = "getPresentation"
	ActionResume       Action = "getResume"
	ActionContact      Action = "getContact"
	ActionSkills       Action = "getSkills"
	ActionSports       Action = "getSports"
	ActionCrazy        Action = "getCrazy"
	ActionInternship   Action = "getInternship"
)

// Actions lists every tool in a stable order.
var Actions = []Action{
	ActionProjects,
	ActionPresentation,
	ActionResume,
	ActionContact,
	ActionSkills,
	ActionSports,
	ActionCrazy,
	ActionInternship,
}

type template struct {
	payload string
	// purpose completes "I should use the getX tool to ..."
	purpose string
}

var templates = map[Action]template{
	ActionProjects: {
		payload: "Here are all the projects made by Kenneth! Don't hesitate to ask me more about them!",
		purpose: "show my projects",
	},
	ActionPresentation: {
		payload: "I'm Kenneth Owusu, a 29-year-old developer specializing in AI and Fullstack Development. I'm working at Codin AI in Ghana. I'm passionate about AI, tech, Entrepreneurship and SaaS tech.",
		purpose: "introduce myself",
	},
	ActionResume: {
		payload: "You can download my resume by clicking on the link above.",
		purpose: "show my resume",
	},
	ActionContact: {
		payload: "Here is my contact information above, Feel free to contact me I will be happy to answer you 😉",
		purpose: "share my contact information",
	},
	ActionSkills: {
		payload: "You can see all my skills above.",
		purpose: "show my skills",
	},
	ActionSports: {
		payload: "Here my best pictures of me doing sports!",
		purpose: "show my sports activities",
	},
	ActionCrazy: {
		payload: "Above is a photo of Me On top of Mont Blanc, the highest mountain in the Alps and the highest in Europe. " +
			"I made it with a friends of mine without guide, it was a great experience! You can see the 80km/h of wind on the photo! " +
			"I made a youtube video of this adventure here: https://www.youtube.com/watch?v=rufGMSgzUOk&ab_channel=Toukoum",
		purpose: "share something crazy about me",
	},
	ActionInternship: {
		payload: `Here's what I'm looking for 👇

- 📅 **Duration**: 6-month internship starting **September 2025**
- 🌍 **Location**: Preferably **San Francisco** or anywhere in the **United States**
- 🧑‍💻 **Focus**: AI development, full-stack web apps, SaaS, agentic workflows
- 🛠️ **Stack**: Python, React/Next.js, Tailwind CSS, TypeScript, GPT, RAG, etc.
- 💼 **Visa**: I'm based in Paris 🇫🇷 so I might need **J-1 sponsorship**
- ✅ **What I bring**: Real experience with secure on-prem GPTs (Lighton), deepsearch engines, custom RAG tools, and hackathon wins like **ETH Oxford** & **Paris Blockchain Week**
- 🔥 I move fast, learn faster, and I'm HUNGRYYYYY for big challenges

📬 **Contact me** via:
- Email: owusukenneth77@gmail.com
- LinkedIn: [linkedin.com/in/okenneth](https://www.linkedin.com/in/okenneth/)
- GitHub: [github.com/Owusu1946](https://github.com/Owusu1946)

Let's build cool shit together ✌️`,
		purpose: "share information about my internship search",
	},
}

// Valid reports whether a is one of the known tools.
func (a Action) Valid() bool {
	_, ok := templates[a]
	return ok
}

func (a Action) String() string {
	if a == ActionNone {
		return "none"
	}
	return string(a)
}

// Payload returns the static result for a. It is empty for ActionNone and
// unknown names.
func (a Action) Payload() string {
	return templates[a].payload
}

// Instruction is the line appended to the user's text so the model
// acknowledges the card instead of answering from scratch.
func (a Action) Instruction() string {
	t, ok := templates[a]
	if !ok {
		return ""
	}
	return "I should use the " + string(a) + " tool to " + t.purpose + "."
}

// Parse maps a tool name back to an Action.
func Parse(name string) (Action, bool) {
	a := Action(name)
	if !a.Valid() {
		return ActionNone, false
	}
	return a, true
}
