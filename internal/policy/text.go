package policy

import "strings"

// The entire prose corpus lives in this file as lookup tables keyed by
// section and category, with named placeholders expanded at composition
// time. The composer's control flow stays free of embedded prose, and the
// corpus can be reviewed and tested on its own.

// expand substitutes {name} placeholders in a template string.
func expand(template string, vars map[string]string) string {
	if len(vars) == 0 {
		return template
	}
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

var sectionText = map[string]string{
	"purpose.body": `This Artificial Intelligence (AI) Usage Policy establishes comprehensive guidelines and standards for the responsible use of AI technologies at {company}. As a {industry} organization with {employees} employees, we recognize the transformative potential of AI while acknowledging the need for careful governance.{emphasis}

This policy applies to all employees, contractors, consultants, and third-party users who interact with AI systems on behalf of {company}. It covers the use of {tools} and any other AI technologies adopted by the organization.

The purpose of this policy is to ensure that AI technologies are used in a manner that aligns with our corporate values, complies with applicable laws and regulations, protects sensitive information, and maintains the trust of our stakeholders.`,

	"purpose.objectives": `The objectives of this policy are to enable productive AI adoption, protect {company} and its stakeholders from AI-related risks, satisfy the compliance obligations arising from {frameworks}, and establish clear accountability for every AI-assisted decision. Audits of AI usage are conducted on a {auditFrequency} basis commensurate with our {riskLevel} risk classification.`,

	"purpose.definitions": `For the purposes of this policy: "AI system" means any software that produces content, predictions, recommendations, or decisions using machine learning or generative models. "AI-generated content" means any output produced wholly or partly by an AI system. "Approved tool" means an AI system that has completed {company}'s technology review process and appears on the approved tool register.`,

	"tools.body": `The following AI tools and technologies have been evaluated and approved for use within {company}: {tools}. Each tool has been assessed for security, privacy, and compliance with our organizational standards.

Employees must only use AI tools that have been officially approved through our technology review process. Any request to use new AI tools must be submitted to the IT department for evaluation before implementation.

The use of personal or unapproved AI tools for company business is strictly prohibited, as these may not meet our security and compliance requirements.`,

	"tools.guidelines": `Each approved AI tool has specific use cases and limitations. Employees must familiarize themselves with the guidelines for each tool they use, including data input restrictions, output verification requirements, and appropriate use cases.`,

	"usage.body": `Different categories of AI tooling carry different obligations. The guidelines below apply to the tool categories in use at {company} and supplement the general acceptable use rules in this policy. Where a tool falls into more than one category, the stricter guideline controls.`,

	"usage.generic": `No category-specific AI tools are currently registered. Employees adopting new tools must consult the IT department so that category guidelines can be issued before first use.`,

	"usage.text-generation": `Text generation tools may be used for drafting, summarization, and research support. All generated text must be fact-checked before distribution, must never be presented as original analysis without review, and must not be fed confidential information as prompt material.`,

	"usage.code-generation": `Code generation tools may be used to accelerate development, but all generated code must pass the same review, testing, and security scanning gates as hand-written code. Generated code must be checked for license contamination before inclusion in proprietary systems, and repository secrets must never appear in prompts.`,

	"usage.image-generation": `Image generation tools may be used for internal illustration and concept work. Generated imagery used externally must be reviewed for trademark conflicts, disclosed as AI-generated where required by law, and must never depict real individuals without documented consent.`,

	"security.body": `Protection of sensitive data is paramount when using AI technologies. Employees must never input the following types of information into AI systems:

- Personally Identifiable Information (PII) of customers, employees, or partners
- Confidential business information, trade secrets, or proprietary data
- Financial records, credit card numbers, or banking information
- Protected Health Information (PHI) or medical records
- Legal documents under attorney-client privilege
- Source code or technical specifications of proprietary systems

All AI-generated content must be treated as potentially public information. Assume that any data input into AI systems could be stored, analyzed, or used for training purposes by the AI provider.`,

	"security.classification": `All data handled at {company} is classified by sensitivity. Our {industry} operations carry a {sensitivity} data sensitivity rating: data at or above this rating must never leave approved systems, and AI tools may only process data at lower classifications after documented review.`,

	"security.incidents": `Suspected exposure of restricted data to an AI system is a security incident. Employees must report it immediately to the security team, preserve the prompt and output involved, and must not attempt remediation on their own. Incidents are triaged within one business day and tracked to closure.`,

	"acceptable.body": `AI tools should be used to enhance productivity, improve decision-making, and support innovation while maintaining professional standards. Acceptable uses include:

- Drafting and editing business communications
- Conducting research and analysis
- Generating ideas and creative content
- Automating routine tasks
- Improving code quality and documentation
- Enhancing customer service responses

All AI-generated content must be reviewed, verified, and edited by qualified personnel before being used in any official capacity. Employees remain fully responsible for any content they create or distribute, regardless of AI assistance.`,

	"acceptable.quality": `AI-assisted work product is subject to the same quality bar as any other work product. Reviewers must verify factual claims, check citations, and confirm that output matches {company} style and accuracy standards before release.`,

	"acceptable.ethics": `AI must not be used to deceive, impersonate, discriminate, or manipulate. Employees must consider the fairness impact of AI-assisted decisions on customers and colleagues, and escalate any use case with potential for disparate impact to the compliance function before proceeding.`,

	"compliance.body": `As a {industry} organization, {company} must comply with industry-specific regulations regarding AI use. This includes:

- Maintaining audit trails of AI-assisted decisions
- Ensuring transparency in AI-driven processes
- Protecting against algorithmic bias and discrimination
- Meeting data retention and deletion requirements
- Complying with international data protection regulations

Employees must understand and follow all regulatory requirements relevant to their role and use of AI technologies.`,

	"compliance.procedures": `Compliance with this policy is verified through {auditFrequency} audits covering tool inventories, access logs, and sampled AI-assisted work product. Findings are reported to the compliance function, and remediation items are tracked to closure.{stateRequirements}`,

	"compliance.state": `In addition, operations in {state} are subject to: {stateFrameworks}. AI-specific obligations include: {stateAISpecific}.`,

	"ip.body": `AI-generated content may raise complex intellectual property questions. When using AI tools:

- Verify ownership rights of AI-generated content
- Properly attribute AI assistance when required
- Ensure compliance with licensing terms of AI tools
- Protect {company}'s intellectual property from unauthorized disclosure
- Respect third-party intellectual property rights

AI should not be used to plagiarize, infringe copyrights, or misappropriate others' work.`,

	"ip.protection": `Proprietary material belonging to {company} must never be submitted to AI systems outside approved, contractually protected environments. Inventions and works assisted by AI must be flagged during invention disclosure so ownership can be assessed correctly.`,

	"ip.thirdparty": `Employees must respect third-party rights in AI workflows: do not prompt tools to reproduce copyrighted works, honor robots and licensing restrictions on training or scraping, and verify that generated output does not substantially reproduce identifiable third-party material.`,

	"monitoring.body": `{company} reserves the right to monitor the use of AI tools to ensure compliance with this policy. Violations may result in:

- Revocation of AI tool access
- Mandatory retraining
- Disciplinary action up to and including termination
- Legal action for serious breaches

All employees are expected to report suspected violations of this policy to their supervisor or the compliance department.`,

	"monitoring.procedures": `Monitoring is limited to business systems and approved AI tools, is proportionate to the {riskLevel} risk level of our operations, and respects applicable employee privacy rights. Employees will be informed of the categories of monitoring in effect and may raise concerns through standard HR channels.`,

	"monitoring.violations": `Violations are assessed on severity and intent. First low-severity violations typically lead to retraining; repeated or willful violations lead to progressive discipline. Any violation involving restricted data exposure triggers the incident response procedure in addition to disciplinary review.`,

	"training.body": `All employees who use AI tools must complete mandatory training on:

- This AI Usage Policy
- Tool-specific guidelines and best practices
- Data security and privacy requirements
- Ethical considerations in AI use
- Industry-specific compliance requirements

Ongoing support and resources are available through the IT helpdesk and learning management system.`,

	"training.certification": `Initial policy training must be completed before AI tool access is granted, with refresher certification on an annual cycle. Completion records are retained with other compliance training records and reviewed during {auditFrequency} audits.`,

	"training.support": `Questions about appropriate AI use should go first to the employee's manager, then to the IT helpdesk for tool issues or the compliance function for policy interpretation. Urgent concerns involving data exposure go directly to the security team.`,

	"transparency.body": `{company} is committed to transparency in its use of AI. Individuals interacting with AI systems on our behalf are informed of that fact, material AI involvement in decisions affecting individuals is disclosed, and our transparency posture is maintained at a {transparencyLevel} level appropriate to our industry and regulatory environment.`,

	"transparency.general": `AI involvement must be disclosed wherever a reasonable person would expect to be dealing with a human, wherever law requires disclosure, and wherever AI output materially influences a decision about an individual. Disclosures must be clear, conspicuous, and made at or before the point of interaction.`,

	"bias.body": `{company} actively works to prevent bias in AI-assisted processes. AI systems used in decisions affecting individuals are subject to bias testing on a {biasFrequency} cadence, and identified disparities are remediated before the system returns to production use.`,

	"bias.detection": `Bias testing compares system outcomes across relevant demographic and protected groups on a {biasFrequency} schedule. Material disparities trigger suspension of the affected use case, root-cause analysis, and documented remediation before reinstatement.`,

	"bias.fairness": `New AI use cases affecting individuals require a fairness review before launch, covering training data provenance, proxy variables, and outcome monitoring plans. Human review is mandatory for adverse decisions, and affected individuals are offered a path to contest AI-influenced outcomes.`,

	"audittrail.body": `{company} maintains audit trails sufficient to reconstruct how AI systems were used in business processes. Logging applies to all approved AI tools, and audit records are protected from tampering and reviewed as part of the {auditFrequency} audit cycle.`,

	"audittrail.logging": `For each material AI-assisted action, logs capture the tool used, the user, the time, the nature of the task, and whether output was accepted, modified, or rejected. Prompts and outputs involving regulated data are logged in full within approved systems.`,

	"audittrail.retention": `AI audit records are retained for {retention}. Access to audit records is restricted to the compliance and security functions, with all access itself logged. Records are disposed of securely at the end of the retention period unless subject to a legal hold.`,
}

// Emphasis phrases substituted into the Purpose and Scope body per template
// classification.
var emphasisText = map[TemplateType]string{
	TemplateLegalFocus:      "As a provider of legal services, we hold client confidentiality, privilege, and professional responsibility above every efficiency gain AI may offer.",
	TemplateHRFocus:         "Because our work shapes employment decisions and employee development, fairness and human oversight are the foundation of our AI adoption.",
	TemplateInsuranceFocus:  "Because our underwriting, pricing, and claims decisions directly affect policyholders, actuarial soundness and fairness govern every AI application.",
	TemplateConsultingFocus: "Because clients entrust us with their most sensitive initiatives, client confidentiality and professional standards govern our use of AI.",
	TemplateStandard:        "",
}

// Specialized sections appended per template classification.
var specializedSections = map[TemplateType]PolicySection{
	TemplateLegalFocus: {
		Title: "Legal Liability and Indemnification",
		Content: `AI-assisted legal work carries malpractice and liability exposure. Attorneys remain fully responsible for all AI-assisted work product, professional liability coverage must account for AI usage, and engagement letters must disclose material AI involvement. Privilege must be protected in every AI workflow, and no client matter data may reach an AI system outside contractually protected environments.`,
	},
	TemplateHRFocus: {
		Title: "Employee Development and AI Skills",
		Content: `AI literacy is a core workforce capability. Role-based AI skill paths are maintained for every function, reskilling support is offered where AI changes job content, and AI proficiency is recognized in performance and development frameworks. Managers are responsible for ensuring their teams can use approved tools effectively and safely.`,
	},
	TemplateInsuranceFocus: {
		Title: "Risk Assessment and Insurance Considerations",
		Content: `AI use in underwriting, rating, and claims is subject to model risk management: documented model inventories, validation before production use, actuarial review of rating impacts, and regulatory filings where required. Algorithmic decisions adverse to policyholders require human review, and model behavior is monitored for drift against approved baselines.`,
	},
	TemplateConsultingFocus: {
		Title: "Client Service and Professional Standards",
		Content: `Client deliverables assisted by AI are reviewed by engagement leadership before release, client confidential material is never submitted to AI tools without explicit contractual cover, and AI involvement is disclosed where the engagement terms or professional standards require it. Our duty of care to clients is unchanged by the tooling used to serve them.`,
	},
}

// Enhanced-mode sections.
var enhancedSections = map[string]PolicySection{
	"compliance_framework": {
		Title: "Enhanced Compliance Framework",
		Content: `Because this policy has been generated under a strict compliance priority, the following controls apply in addition to the baseline: monthly compliance audits with executive reporting, pre-approval of every new AI use case by the compliance function, quarterly third-party control assessments, and mandatory legal review of AI-related vendor contracts. Exceptions to any control require documented sign-off from the compliance officer.`,
	},
	"risk_mitigation": {
		Title: "Enhanced Risk Mitigation Measures",
		Content: `Reflecting a low organizational risk tolerance, AI deployments follow a staged rollout with defined rollback criteria, production AI systems run with human-in-the-loop review for consequential decisions, redundant verification applies to AI output feeding regulated processes, and a standing risk register tracks every accepted AI risk with a named owner and review date.`,
	},
	"benchmarks": {
		Title: "Industry Benchmarks and Best Practices",
		Content: `Peer organizations in {industry} typically audit AI usage on a {auditFrequency} basis, maintain approved-tool registers, and require human review of consequential AI-assisted decisions. {company} tracks its AI governance maturity against the NIST AI Risk Management Framework and reviews emerging industry guidance during each audit cycle, adopting practices that exceed this policy's baseline where they provide measurable risk reduction.`,
	},
}

// Framework-specific clauses appended to the Industry-Specific Requirements
// subsection when the matching framework appears in the effective template.
var frameworkClauses = []struct {
	Framework string
	Clause    string
}{
	{"HIPAA", "HIPAA: AI systems must not process Protected Health Information outside environments covered by a Business Associate Agreement, and any AI involvement in treatment, payment, or operations workflows must preserve the minimum-necessary standard."},
	{"HITECH", "HITECH: breach notification obligations extend to any AI-related exposure of unsecured PHI, including exposure through prompts submitted to external AI services."},
	{"SOX", "SOX: AI-assisted processes feeding financial reporting are subject to internal control over financial reporting; model changes affecting reported figures require documented change control and management review."},
	{"FINRA", "FINRA: AI-assisted communications with the public are subject to supervision and recordkeeping rules; registered representatives may not rely on unreviewed AI output for recommendations."},
	{"GLBA", "GLBA: nonpublic personal information of customers must not be shared with AI providers absent contractual safeguards satisfying the Safeguards Rule."},
	{"PCI-DSS", "PCI-DSS: cardholder data is prohibited as AI input in any form; tokenized or truncated data may be used only within PCI-scoped, assessed environments."},
	{"GDPR", "GDPR: AI processing of EU personal data requires a lawful basis, data-protection impact assessments for high-risk processing, and honoring of data-subject rights including objection to automated decision-making under Article 22."},
	{"CCPA", "CCPA: California consumers must be able to learn what personal information AI systems process about them and to opt out of its sale or sharing; AI workflows must support access and deletion requests."},
	{"FERPA", "FERPA: student education records may not be disclosed to AI systems without consent or a qualifying exception, and AI tools used in instruction must be vetted as school officials with legitimate educational interest."},
	{"SOC 2", "SOC 2: AI tooling is in scope for the security and confidentiality trust criteria; vendor AI services must hold a current SOC 2 report or pass equivalent security review."},
	{"FedRAMP", "FedRAMP: AI services processing federal data must operate within FedRAMP-authorized boundaries at the impact level of the data involved."},
	{"FISMA", "FISMA: AI systems supporting federal information systems are subject to security categorization, control selection, and continuous monitoring requirements."},
}

// TransparencyFamily keys the industry-family text blocks for the AI
// Transparency Requirements section.
type TransparencyFamily string

const (
	FamilyHealthcare TransparencyFamily = "healthcare"
	FamilyFinancial  TransparencyFamily = "financial"
	FamilyInsurance  TransparencyFamily = "insurance"
	FamilyLegal      TransparencyFamily = "legal"
	FamilyGeneral    TransparencyFamily = "general"
)

var transparencyIndustryText = map[TransparencyFamily]string{
	FamilyHealthcare: `In healthcare settings, patients must be informed when AI contributes materially to diagnosis, treatment planning, or care communication. Clinical AI recommendations are decision support only: a licensed clinician makes and documents the final decision. AI involvement in clinical documentation must be identifiable in the record.`,
	FamilyFinancial:  `In financial services, customers must be informed when AI materially influences credit, pricing, or investment decisions affecting them. Adverse-action notices must accurately reflect AI-derived reasons, and model explanations sufficient for regulatory examination must be maintained for every customer-facing model.`,
	FamilyInsurance:  `In insurance operations, applicants and policyholders must be informed when AI materially influences underwriting, rating, or claims outcomes. Adverse decisions influenced by AI require human review and an explanation of the principal factors, consistent with state insurance regulation.`,
	FamilyLegal:      `In legal practice, clients must be informed of material AI involvement in their matters where professional rules or engagement terms require it. AI involvement in court filings must be disclosed where required by the tribunal, and billing must accurately distinguish AI-assisted work.`,
	FamilyGeneral:    `Customers, employees, and partners must be able to learn when they are interacting with AI and when AI materially influences decisions about them. Disclosures are written in plain language and made at or before the point of interaction.`,
}

// Retention rules for the AI Audit Trail section, evaluated in order;
// first framework match wins. The fallback is the 3-year default.
var retentionRules = []struct {
	Framework string
	Wording   string
}{
	{"HIPAA", "6 years"},
	{"SOX", "7 years"},
	{"FINRA", "6 years"},
	{"GDPR", "no longer than necessary for the purposes for which the data is processed"},
}

const defaultRetentionWording = "3 years"

// retentionWording derives the audit retention phrase from the effective
// frameworks.
func retentionWording(frameworks []string) string {
	set := make(map[string]struct{}, len(frameworks))
	for _, f := range frameworks {
		set[strings.ToUpper(strings.TrimSpace(f))] = struct{}{}
	}
	for _, rule := range retentionRules {
		if _, ok := set[strings.ToUpper(rule.Framework)]; ok {
			return rule.Wording
		}
	}
	return defaultRetentionWording
}

// industrySpecificClauses concatenates the clauses for every recognized
// framework, in the order the frameworks appear in the effective template.
func industrySpecificClauses(frameworks []string) string {
	var clauses []string
	for _, f := range frameworks {
		needle := strings.ToUpper(strings.TrimSpace(f))
		for _, fc := range frameworkClauses {
			if strings.ToUpper(fc.Framework) == needle {
				clauses = append(clauses, fc.Clause)
				break
			}
		}
	}
	if len(clauses) == 0 {
		return "No framework-specific clauses apply beyond the general regulatory compliance procedures above."
	}
	return strings.Join(clauses, "\n\n")
}

// transparencyFamily matches the industry string to a family by
// case-insensitive substring.
func transparencyFamily(industry string) TransparencyFamily {
	lower := strings.ToLower(industry)
	switch {
	case strings.Contains(lower, "health") || strings.Contains(lower, "medical") || strings.Contains(lower, "pharma"):
		return FamilyHealthcare
	case strings.Contains(lower, "financ") || strings.Contains(lower, "bank") || strings.Contains(lower, "invest"):
		return FamilyFinancial
	case strings.Contains(lower, "insurance"):
		return FamilyInsurance
	case strings.Contains(lower, "legal") || strings.Contains(lower, "law"):
		return FamilyLegal
	default:
		return FamilyGeneral
	}
}
