package urls

// ProjectRepository is where this program's source lives.
const ProjectRepository = "https://github.com/muurk/wordhunt"

// SolverAPIHome is the landing page of the default solver API.
const SolverAPIHome = "https://api.whsolver.ajayganesh.com"

// SolverBackendSource is the source of the solver API,
// including the depth first search over the grid.
const SolverBackendSource = "https://github.com/AjayGanesh02/whsolverbackend"

// SolverFrontendSource is the React front end for the API.
const SolverFrontendSource = "https://github.com/AjayGanesh02/whsolverfrontend"

// Display strips the scheme for places where a URL is shown, not clicked.
func Display(url string) string {
	for _, prefix := range []string{"https://", "http://"} {
		if len(url) > len(prefix) && url[:len(prefix)] == prefix {
			return url[len(prefix):]
		}
	}
	return url
}
