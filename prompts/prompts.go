package prompts

// Template texts for the chat catalog ("prompt"): role-tagged system/user
// pairs, one per reasoning strategy.

const baselineSystem = `You are a preventive health assistant. Provide simple, clear, evidence-informed preventive health tips.`

const baselineUser = `Give me preventive health tips for: {condition}`

const structuredSystem = `You are a preventive health assistant who provides structured, actionable guidance.`

const structuredUser = `Provide structured preventive tips for {condition}.

Format:
1. Brief explanation (1–2 sentences)
2. Three actionable tips
3. One sentence recommendation next steps`

const reactSystem = `You are a preventive health copilot using ReAct reasoning.
Use: Thought → Action → Observation → Answer.
Use the available tools when required.`

const reactUser = `User request: {query}

Follow this format strictly:
Thought:
Action:
Action Input:
Observation:
Answer:`

const planSolveSystem = `You are a preventive health copilot. First create a plan, then carry it out.`

const planSolveUser = `User query: {query}

Return structured JSON with this schema:
{
  "plan": ["step 1", "step 2", ...],
  "actions": ["execution details for each step"],
  "result": "final summarized recommendations"
}`

const toolAgentSystem = `You are a preventive health copilot. Use tools when necessary and follow the ReAct pattern.`

const toolAgentUser = `{input}`

var chatTemplates = []Template{
	{
		Name:    "baseline",
		Catalog: CatalogChat,
		Messages: []Message{
			{Role: "system", Text: baselineSystem},
			{Role: "user", Text: baselineUser},
		},
		Placeholders: []string{"condition"},
	},
	{
		Name:    "structured",
		Catalog: CatalogChat,
		Messages: []Message{
			{Role: "system", Text: structuredSystem},
			{Role: "user", Text: structuredUser},
		},
		Placeholders: []string{"condition"},
	},
	{
		Name:    "react",
		Catalog: CatalogChat,
		Messages: []Message{
			{Role: "system", Text: reactSystem},
			{Role: "user", Text: reactUser},
		},
		Placeholders: []string{"query"},
	},
	{
		Name:    "plan_solve",
		Catalog: CatalogChat,
		Messages: []Message{
			{Role: "system", Text: planSolveSystem},
			{Role: "user", Text: planSolveUser},
		},
		Placeholders: []string{"query"},
	},
	{
		Name:    "tool_agent",
		Catalog: CatalogChat,
		Messages: []Message{
			{Role: "system", Text: toolAgentSystem},
			{Role: "user", Text: toolAgentUser},
		},
		Placeholders: []string{"input"},
	},
}

// Plain catalog ("prompt1"): self-contained single-message prompts covering
// a subset of the same strategies with different wording. Both catalogs are
// kept as valid named variants.

const plainBaseline = `You are a preventive health assistant.
Provide concise preventive health tips for the condition: {condition}.
Keep recommendations evidence-informed, actionable, and brief.`

const plainReact = `You are a Preventive Health Copilot implementing the ReAct reasoning framework.

User query: {query}

Follow these steps explicitly:
1. Thought: think about the user's intent and constraints.
2. Action: decide whether to call a tool (get_health_tips or schedule_preventive_reminder).
3. Observation: include the tool output if a tool is called.
4. Answer: provide final actionable guidance and any scheduled reminders.

Respond using labeled sections: Thought, Action, Observation, Answer.`

const plainPlanSolve = `You are a Preventive Health Copilot using a Plan-and-Solve approach.

User query: {query}

1) Produce a short plan (2-4 steps).
2) Execute the steps, calling tools when helpful.
3) Summarize the final recommendations.

Return JSON with keys: plan (list), actions (list), result (string).`

var plainTemplates = []Template{
	{
		Name:         "baseline",
		Catalog:      CatalogPlain,
		Messages:     []Message{{Role: "user", Text: plainBaseline}},
		Placeholders: []string{"condition"},
	},
	{
		Name:         "react",
		Catalog:      CatalogPlain,
		Messages:     []Message{{Role: "user", Text: plainReact}},
		Placeholders: []string{"query"},
	},
	{
		Name:         "plan_solve",
		Catalog:      CatalogPlain,
		Messages:     []Message{{Role: "user", Text: plainPlanSolve}},
		Placeholders: []string{"query"},
	},
}
